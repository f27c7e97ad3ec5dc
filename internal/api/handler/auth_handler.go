package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tripnest/travel-client/internal/api/metrics"
	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

// TokenIssuer signs a session token for an authenticated identity.
type TokenIssuer interface {
	Issue(sid string, identity domain.Identity) (string, time.Time, error)
}

type AuthHandler struct {
	sessions ports.SessionService
	tokens   TokenIssuer
}

func NewAuthHandler(sessions ports.SessionService, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{sessions: sessions, tokens: tokens}
}

type authResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	User      *domain.Identity `json:"user"`
}

// Register creates a new account. It does not log the new user in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.RegisterInput  true  "Signup form"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := h.sessions.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates against the backend and opens a new server-side session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.Credentials  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.Credentials
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	sid := uuid.NewString()
	identity, err := h.sessions.Login(c.Request().Context(), sid, req)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	token, exp, err := h.tokens.Issue(sid, *identity)
	if err != nil {
		h.sessions.Logout(c.Request().Context(), sid)
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, ExpiresAt: exp, User: identity})
}

// Logout ends the session behind the token. It never fails once authenticated.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sid, err := ctxSID(c)
	if err != nil {
		return err
	}
	h.sessions.Logout(c.Request().Context(), sid)
	return c.NoContent(http.StatusNoContent)
}

// Me returns the identity of the current session.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Identity
// @Failure      401  {object}  errorResponse
// @Router       /v1/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

// UpdateMe edits the current user's email and phone.
//
// @Summary      Update profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.ProfileInput  true  "Profile fields"
// @Success      200   {object}  domain.Identity
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/me [put]
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	sid, err := ctxSID(c)
	if err != nil {
		return err
	}
	var req ports.ProfileInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	identity, err := h.sessions.UpdateProfile(c.Request().Context(), sid, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrValidation):
		return "invalid_input"
	default:
		return "error"
	}
}
