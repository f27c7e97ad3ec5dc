package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/infrastructure/gateway"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
		{"validation", domain.NewValidationError("email", "email must be a valid email"), http.StatusUnprocessableEntity, "email must be a valid email"},
		{"not authenticated", domain.ErrNotAuthenticated, http.StatusUnauthorized, "not authenticated"},
		{"bad credentials", fmt.Errorf("login: %w", domain.ErrInvalidCredentials), http.StatusUnauthorized, "invalid username or password"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"username taken", domain.ErrUsernameTaken, http.StatusConflict, "username already taken"},
		{"pending", fmt.Errorf("booking:cancel:b1: %w", domain.ErrActionPending), http.StatusConflict, "booking:cancel:b1: action already in progress"},
		{"transition", fmt.Errorf("cancel: %w", domain.ErrInvalidTransition), http.StatusUnprocessableEntity, "cancel: invalid status transition"},
		{"backend 404", &gateway.RequestFailedError{Op: "get booking", Status: 404, Message: "Failed to fetch booking"}, http.StatusNotFound, "not found"},
		{"backend rejection", fmt.Errorf("register: %w", &gateway.RequestFailedError{Op: "register", Status: 409, Message: "Username already exists"}), http.StatusBadGateway, "Username already exists"},
		{"network", &gateway.NetworkError{Op: "list packages", Err: errors.New("dial tcp: refused")}, http.StatusServiceUnavailable, "service unavailable, please try again"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, resp.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_ValidationFields(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(&domain.ValidationError{Fields: map[string]string{
		"username": "username is required",
		"password": "password is required",
	}}, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Fields) != 2 || resp.Fields["username"] != "username is required" {
		t.Fatalf("unexpected fields: %+v", resp.Fields)
	}
}
