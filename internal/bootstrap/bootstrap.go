package bootstrap

import (
	"io"
	"log/slog"

	"github.com/changhyeonkim/member-registry/internal/config"
	sharedError "github.com/changhyeonkim/member-registry/internal/shared/error"
	"github.com/changhyeonkim/member-registry/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap handles common server setup that can be reused across projects
type Bootstrap struct {
	cfg *config.Config
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates and configures a gin engine with common middleware
func (b *Bootstrap) SetupEngine() *gin.Engine {
	// Set Gin mode based on environment
	switch {
	case b.cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case b.cfg.App.Env == "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	// Create engine without default middleware
	engine := gin.New()

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.AccessLog()) // before the limiter so 429s are logged too
	engine.Use(middleware.CORS(b.cfg.CORS))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout))
	engine.Use(middleware.RateLimit(b.cfg.RateLimit))

	return engine
}

// recoveryHandler handles panics
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	slog.Error("Panic Recovered",
		"error", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)

	resp := sharedError.InternalServerError
	c.AbortWithStatusJSON(resp.Status, resp)
}
