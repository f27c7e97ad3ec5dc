package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/travel-client/internal/core/domain"
)

const defaultActivityLimit = 20

// ActivityLister reads the audit trail written for lifecycle actions.
type ActivityLister interface {
	ListByUser(ctx context.Context, userID domain.ID, limit int64) ([]domain.Activity, error)
}

type ActivityHandler struct {
	activities ActivityLister
}

func NewActivityHandler(activities ActivityLister) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

type activityResponse struct {
	Kind      domain.ActivityKind `json:"kind"`
	SubjectID domain.ID           `json:"subjectId"`
	Status    string              `json:"status,omitempty"`
	Notes     string              `json:"notes,omitempty"`
	At        string              `json:"at"`
}

// List handles GET /v1/me/activity.
//
// @Summary      My recent activity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries (default 20)"
// @Success      200    {array}   activityResponse
// @Failure      400    {object}  errorResponse
// @Router       /v1/me/activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	limit := int64(defaultActivityLimit)
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 || n > 100 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be between 1 and 100")
		}
		limit = n
	}

	activities, err := h.activities.ListByUser(c.Request().Context(), identity.ID, limit)
	if err != nil {
		return err
	}

	out := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, activityResponse{
			Kind:      a.Kind,
			SubjectID: a.SubjectID,
			Status:    a.Status,
			Notes:     a.Notes,
			At:        a.At.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	return c.JSON(http.StatusOK, out)
}
