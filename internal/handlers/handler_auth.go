package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/walletapp/wallet_ledger_app/internal/apperrors"
	"github.com/walletapp/wallet_ledger_app/internal/core/services"
	"github.com/walletapp/wallet_ledger_app/internal/dto"
	"github.com/walletapp/wallet_ledger_app/internal/middleware"
	"github.com/walletapp/wallet_ledger_app/internal/platform/config"
	"github.com/walletapp/wallet_ledger_app/internal/utils"
)

// authHandler serves the public registration and login endpoints.
type authHandler struct {
	services *services.Container
	cfg      *config.Config
}

func registerAuthRoutes(r *gin.Engine, cfg *config.Config, svcs *services.Container) {
	h := &authHandler{services: svcs, cfg: cfg}

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

// register creates the user and then explicitly opens their account. The two
// steps are separate calls: if account creation fails the user still exists
// and can retry via POST /api/v1/account.
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.services.User.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.services.Account.CreateAccountForUser(c.Request.Context(), user.UserID, h.cfg.DefaultCurrency); err != nil {
		logger.Error("User registered but account creation failed",
			slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(*user))
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.services.User.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{
				Code:    "INVALID_CREDENTIALS",
				Message: "invalid email or password",
			}})
			return
		}
		logger.Error("Login failed", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		respondError(c, apperrors.NewAppError(http.StatusInternalServerError, "failed to issue token", err))
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(h.cfg.JWTExpiryDuration),
	})
}
