package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/minauth/auth-service/internal/api/metrics"
	"github.com/minauth/auth-service/internal/api/middleware"
	"github.com/minauth/auth-service/internal/core/domain"
	"github.com/minauth/auth-service/internal/core/ports"
)

// AuthHandler exposes the authentication engine over HTTP.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type logoutRequest struct {
	Token string `json:"token" validate:"required"`
}

type updateRoleRequest struct {
	UserID  string `json:"user_id"  validate:"required"`
	NewRole string `json:"new_role" validate:"required"`
}

type registeredData struct {
	UserID   string      `json:"user_id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

type userData struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
}

type loginData struct {
	Token     string   `json:"token"`
	User      userData `json:"user"`
	ExpiresAt string   `json:"expires_at"`
}

type userListItem struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt string      `json:"created_at"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  successEnvelope
// @Failure      400   {object}  errorEnvelope
// @Failure      409   {object}  errorEnvelope
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role := domain.Role("")
	if req.Role != "" {
		parsed, err := domain.ParseRole(req.Role)
		if err != nil {
			return err
		}
		role = parsed
	}

	user, err := h.auth.Register(c.Request().Context(), req.Username, req.Email, req.Password, role)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()

	return Success(c, "User registered successfully", registeredData{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
}

// Login authenticates credentials and issues a bearer session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  successEnvelope
// @Failure      401   {object}  errorEnvelope
// @Failure      403   {object}  errorEnvelope
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()

	return Success(c, "Login successful", loginData{
		Token: result.Token,
		User: userData{
			ID:       result.User.ID,
			Username: result.User.Username,
			Email:    result.User.Email,
			Role:     result.User.Role,
		},
		ExpiresAt: result.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout revokes the session for the supplied token. Idempotent.
//
// @Summary      Logout
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      logoutRequest  true  "Session token"
// @Success      200   {object}  successEnvelope
// @Failure      400   {object}  errorEnvelope
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.Logout(c.Request().Context(), req.Token); err != nil {
		return err
	}
	metrics.SessionsRevokedTotal.Inc()

	return Success(c, "Logged out successfully", nil)
}

// Verify resolves the bearer token to its principal.
//
// @Summary      Verify the current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successEnvelope
// @Failure      401  {object}  errorEnvelope
// @Router       /api/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing or invalid token")
	}

	return Success(c, "Success", map[string]any{
		"user_id":    principal.UserID,
		"username":   principal.Username,
		"role":       principal.Role,
		"expires_at": principal.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// ListUsers returns all registered users. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successEnvelope
// @Failure      401  {object}  errorEnvelope
// @Failure      403  {object}  errorEnvelope
// @Router       /api/users [get]
func (h *AuthHandler) ListUsers(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing or invalid token")
	}

	users, err := h.auth.ListUsers(c.Request().Context(), principal.Role)
	if err != nil {
		return err
	}

	items := make([]userListItem, 0, len(users))
	for _, u := range users {
		items = append(items, userListItem{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return Success(c, "Success", items)
}

// UpdateRole changes a user's role. Admin only.
//
// @Summary      Update a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateRoleRequest  true  "Target user and new role"
// @Success      200   {object}  successEnvelope
// @Failure      400   {object}  errorEnvelope
// @Failure      403   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /api/users/update-role [post]
func (h *AuthHandler) UpdateRole(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing or invalid token")
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	newRole, err := domain.ParseRole(req.NewRole)
	if err != nil {
		return err
	}

	if err := h.auth.UpdateRole(c.Request().Context(), req.UserID, newRole, principal.Role); err != nil {
		return err
	}

	return Success(c, "User role updated successfully", nil)
}
