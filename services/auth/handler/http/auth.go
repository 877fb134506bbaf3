package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lleva/internal/pkg/logger"
	"github.com/piresc/lleva/internal/pkg/middleware"
	"github.com/piresc/lleva/internal/pkg/models"
	nrpkg "github.com/piresc/lleva/internal/pkg/newrelic"
	"github.com/piresc/lleva/internal/utils"
	"github.com/piresc/lleva/services/auth"
)

// AuthHandler handles account registration and sign in
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// Register creates an account and returns a token
func (h *AuthHandler) Register(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Auth.Register")

	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.authUC.Register(c.Request().Context(), req)
	if err != nil {
		return h.writeError(c, err)
	}
	middleware.SetUserID(c, resp.User.ID)

	return utils.SuccessResponse(c, http.StatusCreated, "User registered", resp)
}

// Login signs a user in
func (h *AuthHandler) Login(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Auth.Login")

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.authUC.Login(c.Request().Context(), req)
	if err != nil {
		return h.writeError(c, err)
	}
	middleware.SetUserID(c, resp.User.ID)

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Logout revokes the presented token
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}
	tokenID, _ := c.Get("token_id").(string)
	expiresAt, _ := c.Get("token_expires_at").(time.Time)

	if err := h.authUC.Logout(c.Request().Context(), userID, tokenID, expiresAt); err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// GetProfile returns the signed-in user's profile
func (h *AuthHandler) GetProfile(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Auth.GetProfile")

	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	profile, err := h.authUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateProfile edits the signed-in user's profile
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Auth.UpdateProfile")

	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	var update models.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	profile, err := h.authUC.UpdateProfile(c.Request().Context(), userID, update)
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", profile)
}

func (h *AuthHandler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, auth.ErrEmailTaken):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, auth.ErrProfileNotFound):
		return utils.NotFoundResponse(c, err.Error())
	}

	middleware.NoticeError(c, err)
	logger.ErrorCtx(c.Request().Context(), "Auth request failed",
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, "Internal server error")
}
