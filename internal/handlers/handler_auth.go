package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/SscSPs/entry_workbench/internal/dto"
	"github.com/SscSPs/entry_workbench/internal/middleware"
	"github.com/SscSPs/entry_workbench/internal/platform/config"
	"github.com/SscSPs/entry_workbench/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler issues development tokens. Identity is owned by an upstream provider,
// so this exists only outside production.
type authHandler struct {
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

func newAuthHandler(cfg *config.Config) *authHandler {
	return &authHandler{
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes mounts the token endpoint, rate limited to 5 requests per minute.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	h := newAuthHandler(cfg)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	limitMiddleware := limitergin.NewMiddleware(limiter.New(memory.NewStore(), rate))

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/dev-token", limitMiddleware, h.devToken)
	}
}

func (h *authHandler) devToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DevTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Fields: map[string]string{"role": err.Error()}})
		return
	}

	duration := h.jwtDuration
	if duration <= 0 {
		duration = time.Hour
	}
	token, err := utils.GenerateJWT(domain.Actor{UserID: req.UserID, Role: role}, h.jwtSecret, duration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("Issued development token", slog.String("user_id", req.UserID), slog.String("role", string(role)))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresIn: int64(duration.Seconds())})
}
