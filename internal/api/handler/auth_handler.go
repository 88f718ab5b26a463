package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/edustack/course-platform/internal/api/metrics"
	"github.com/edustack/course-platform/internal/core/domain"
	"github.com/edustack/course-platform/internal/core/ports"
)

// AuthHandler handles the authentication endpoints and the seeded demo
// user list.
type AuthHandler struct {
	service ports.AuthService
	audit   ports.AuditSink
	demo    []domain.DemoAccount
}

func NewAuthHandler(service ports.AuthService, audit ports.AuditSink, demo []domain.DemoAccount) *AuthHandler {
	return &AuthHandler{service: service, audit: audit, demo: demo}
}

// Login authenticates a user and returns a signed session token.
//
// @Summary      Login
// @Tags         authentication
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   "invalid credentials"
// @Router       /api/authentication/Login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			h.enqueueAudit(c, req.Username, domain.AuditActionLogin, domain.AuditOutcomeFailure, "invalid credentials")
			// Bare 401: the caller must not learn whether the username or
			// the password was wrong.
			return c.NoContent(http.StatusUnauthorized)
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	h.enqueueAudit(c, req.Username, domain.AuditActionLogin, domain.AuditOutcomeSuccess, "")

	return c.JSON(http.StatusOK, loginResponse{
		Token:      result.Token,
		Expiration: result.ExpiresAt,
		User:       result.Username,
	})
}

// Register creates a user account with no roles.
//
// @Summary      Register a new user
// @Tags         authentication
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  statusResponse
// @Failure      406   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /api/authentication/Register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	err := h.service.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	switch {
	case err == nil:
		metrics.RegistrationsTotal.WithLabelValues("user", "success").Inc()
		h.enqueueAudit(c, req.Username, domain.AuditActionRegister, domain.AuditOutcomeSuccess, "")
		return c.JSON(http.StatusOK, statusResponse{Status: statusSuccess, Message: msgUserCreated})
	case errors.Is(err, domain.ErrEmailExists):
		metrics.RegistrationsTotal.WithLabelValues("user", "conflict").Inc()
		h.enqueueAudit(c, req.Username, domain.AuditActionRegister, domain.AuditOutcomeFailure, "email exists")
		return c.JSON(http.StatusNotAcceptable, statusResponse{Status: statusError, Message: msgEmailExists})
	case errors.Is(err, domain.ErrUsernameExists):
		// Only email is pre-checked; a username collision still surfaces
		// from the store and gets its own conflict response.
		metrics.RegistrationsTotal.WithLabelValues("user", "conflict").Inc()
		h.enqueueAudit(c, req.Username, domain.AuditActionRegister, domain.AuditOutcomeFailure, "username exists")
		return c.JSON(http.StatusNotAcceptable, statusResponse{Status: statusError, Message: msgUserExists})
	case errors.Is(err, domain.ErrPasswordPolicy):
		metrics.RegistrationsTotal.WithLabelValues("user", "rejected").Inc()
		h.enqueueAudit(c, req.Username, domain.AuditActionRegister, domain.AuditOutcomeFailure, "password policy")
		return c.JSON(http.StatusInternalServerError, statusResponse{Status: statusError, Message: msgPasswordPolicy})
	default:
		return err
	}
}

// RegisterAdmin creates a user account and assigns it the Admin role.
//
// @Summary      Register a new admin
// @Tags         authentication
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /api/authentication/RegisterAdmin [post]
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	err := h.service.RegisterAdmin(c.Request().Context(), req.Username, req.Email, req.Password)
	switch {
	case err == nil:
		metrics.RegistrationsTotal.WithLabelValues("admin", "success").Inc()
		h.enqueueAudit(c, req.Username, domain.AuditActionRegisterAdmin, domain.AuditOutcomeSuccess, "")
		return c.JSON(http.StatusOK, statusResponse{Status: statusSuccess, Message: msgUserCreated})
	case errors.Is(err, domain.ErrUsernameExists):
		// Duplicate usernames come back as a 500 here, not a 406. Kept for
		// compatibility with the contract this service replaces.
		metrics.RegistrationsTotal.WithLabelValues("admin", "conflict").Inc()
		h.enqueueAudit(c, req.Username, domain.AuditActionRegisterAdmin, domain.AuditOutcomeFailure, "username exists")
		return c.JSON(http.StatusInternalServerError, statusResponse{Status: statusError, Message: msgUserExists})
	case errors.Is(err, domain.ErrPasswordPolicy):
		metrics.RegistrationsTotal.WithLabelValues("admin", "rejected").Inc()
		h.enqueueAudit(c, req.Username, domain.AuditActionRegisterAdmin, domain.AuditOutcomeFailure, "password policy")
		return c.JSON(http.StatusInternalServerError, statusResponse{Status: statusError, Message: msgPasswordPolicy})
	default:
		return err
	}
}

// GetUsers returns the seeded demo account list.
//
// @Summary      List demo accounts
// @Tags         authentication
// @Produce      json
// @Success      200  {array}  domain.DemoAccount
// @Router       /api/authentication [get]
func (h *AuthHandler) GetUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.demo)
}

func (h *AuthHandler) enqueueAudit(c echo.Context, username, action, outcome, reason string) {
	if h.audit == nil {
		return
	}
	h.audit.Enqueue(domain.AuthEvent{
		Username:  username,
		Action:    action,
		Outcome:   outcome,
		Reason:    reason,
		RemoteIP:  c.RealIP(),
		Timestamp: time.Now().UTC(),
	})
}
