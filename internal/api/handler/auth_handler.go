package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coursecompass/course-discovery/internal/core/domain"
	"github.com/coursecompass/course-discovery/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	startedAt   time.Time
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, startedAt: time.Now()}
}

// Register creates the admin account and returns its public fields plus a
// signed token.
//
// @Summary      Register an admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authEnvelope
// @Failure      400   {object}  authEnvelope
// @Failure      409   {object}  authEnvelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authEnvelope{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authEnvelope{Message: err.Error()})
	}

	result, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrAdminExists) {
			return c.JSON(http.StatusConflict, authEnvelope{Message: "Admin with this email already exists"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, authEnvelope{
		Status:  true,
		Message: "Admin registered successfully",
		Data:    authData{Admin: toAdminView(result.Admin), Token: result.Token},
	})
}

// Login authenticates the admin. A wrong email and a wrong password produce
// the same 401 body so addresses cannot be enumerated.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authEnvelope
// @Failure      401   {object}  authEnvelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authEnvelope{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authEnvelope{Message: err.Error()})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrAdminNotFound) {
			return c.JSON(http.StatusUnauthorized, authEnvelope{Message: "invalid email or password"})
		}
		return err
	}

	return c.JSON(http.StatusOK, authEnvelope{
		Status:  true,
		Message: "Login successful",
		Data:    authData{Admin: toAdminView(result.Admin), Token: result.Token},
	})
}

// AdminOnly echoes the verified token claims back to the caller.
//
// @Summary      Bearer-protected probe
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  authEnvelope
// @Failure      401  {object}  authEnvelope
// @Router       /auth/admin-only [get]
func (h *AuthHandler) AdminOnly(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authEnvelope{
		Status:  true,
		Message: "Protected route accessed successfully",
		Data: adminOnlyData{
			Message: "Hello Admin",
			User:    claims,
		},
	})
}

// Health reports liveness with the process uptime in seconds.
func (h *AuthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, authEnvelope{
		Status:  true,
		Message: "Auth microservice is healthy",
		Data: authHealthData{
			Timestamp: time.Now().UTC(),
			Uptime:    time.Since(h.startedAt).Seconds(),
		},
	})
}

// Describe serves the root service descriptor.
func (h *AuthHandler) Describe(c echo.Context) error {
	return c.JSON(http.StatusOK, serviceDescriptor{
		Status:  "Auth microservice running",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"register":  "POST /auth/register",
			"login":     "POST /auth/login",
			"adminOnly": "GET /auth/admin-only",
			"health":    "GET /auth/health",
		},
	})
}

func toAdminView(admin *domain.Admin) adminView {
	return adminView{
		ID:        admin.ID,
		Email:     admin.Email,
		Name:      admin.Name,
		CreatedAt: admin.CreatedAt,
	}
}
