package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/travel-client/internal/api/metrics"
	"github.com/tripnest/travel-client/internal/core/aggregate"
	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

type ExpenseHandler struct {
	expenses ports.ExpenseService
}

func NewExpenseHandler(expenses ports.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// List handles GET /v1/expenses.
//
// @Summary      List my expenses
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        tripId  query     string  false  "Only expenses of this trip"
// @Success      200     {object}  expenseListResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/expenses [get]
func (h *ExpenseHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	tripID := domain.ID(c.QueryParam("tripId")).Ref()

	items, err := h.expenses.List(c.Request().Context(), identity.ID, tripID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expenseListResponse{
		Items: items,
		Total: aggregate.ExpenseTotal(items).StringFixed(2),
	})
}

// TripTotal handles GET /v1/trips/:id/expenses/total.
//
// @Summary      Total spent on a trip
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Trip ID"
// @Success      200  {object}  tripTotalResponse
// @Router       /v1/trips/{id}/expenses/total [get]
func (h *ExpenseHandler) TripTotal(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	tripID := pathID(c, "id")

	total, err := h.expenses.TripTotal(c.Request().Context(), identity.ID, tripID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tripTotalResponse{TripID: tripID, Total: total.StringFixed(2)})
}

// Create handles POST /v1/expenses.
//
// @Summary      Record an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.ExpenseInput  true  "Expense form"
// @Success      201   {object}  domain.Expense
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/expenses [post]
func (h *ExpenseHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req ports.ExpenseInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	req.UserID = identity.ID

	expense, err := h.expenses.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	metrics.ExpensesRecordedTotal.WithLabelValues(expense.Category).Inc()
	return c.JSON(http.StatusCreated, expense)
}

// Update handles PUT /v1/expenses/:id.
//
// @Summary      Replace an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Expense ID"
// @Param        body  body      ports.ExpenseInput  true  "Expense form"
// @Success      200   {object}  domain.Expense
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req ports.ExpenseInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if req.UserID == "" {
		req.UserID = identity.ID
	}

	expense, err := h.expenses.Update(c.Request().Context(), identity, pathID(c, "id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expense)
}

// Delete handles DELETE /v1/expenses/:id.
//
// @Summary      Delete an expense
// @Tags         expenses
// @Security     BearerAuth
// @Param        id   path  string  true  "Expense ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.expenses.Delete(c.Request().Context(), identity, pathID(c, "id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
