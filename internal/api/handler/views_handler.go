package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tripnest/travel-client/internal/api/metrics"
	"github.com/tripnest/travel-client/internal/core/aggregate"
	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

// ViewsHandler serves the composed read views.
type ViewsHandler struct {
	views ports.ViewsService
}

func NewViewsHandler(views ports.ViewsService) *ViewsHandler {
	return &ViewsHandler{views: views}
}

// Dashboard handles GET /v1/dashboard.
//
// @Summary      Dashboard for the current user
// @Tags         views
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  false  "Reference date for upcoming bookings (YYYY-MM-DD), defaults to today"
// @Success      200   {object}  aggregate.Dashboard
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *ViewsHandler) Dashboard(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	reference, err := domain.ParseDate(c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	timer := prometheus.NewTimer(metrics.ViewBuildDuration.WithLabelValues("dashboard"))
	defer timer.ObserveDuration()

	view, err := h.views.Dashboard(c.Request().Context(), identity, reference)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// History handles GET /v1/history.
//
// @Summary      Booking history for the current user
// @Tags         views
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  aggregate.History
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /v1/history [get]
func (h *ViewsHandler) History(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.ViewBuildDuration.WithLabelValues("history"))
	defer timer.ObserveDuration()

	view, err := h.views.History(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Catalog handles GET /v1/packages.
//
// @Summary      Browse packages
// @Tags         packages
// @Produce      json
// @Param        search    query     string  false  "Title or description contains"
// @Param        category  query     string  false  "Exact category"
// @Param        sort      query     string  false  "title_asc, title_desc, price_asc or price_desc"
// @Param        page      query     int     false  "1-based page"
// @Param        per_page  query     int     false  "Page size (default 6)"
// @Success      200       {object}  aggregate.CatalogPage
// @Failure      400       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /v1/packages [get]
func (h *ViewsHandler) Catalog(c echo.Context) error {
	var q aggregate.CatalogQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	timer := prometheus.NewTimer(metrics.ViewBuildDuration.WithLabelValues("catalog"))
	defer timer.ObserveDuration()

	page, err := h.views.Catalog(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Package handles GET /v1/packages/:id.
//
// @Summary      Package detail
// @Tags         packages
// @Produce      json
// @Param        id   path      string  true  "Package ID"
// @Success      200  {object}  domain.Package
// @Failure      404  {object}  errorResponse
// @Router       /v1/packages/{id} [get]
func (h *ViewsHandler) Package(c echo.Context) error {
	pkg, err := h.views.Package(c.Request().Context(), pathID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pkg)
}
