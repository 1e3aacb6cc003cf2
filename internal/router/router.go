package router

import (
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"

	"github.com/lvyanru/aida-chat/internal/handler"
	"github.com/lvyanru/aida-chat/internal/middleware"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Chat   *handler.ChatHandler
	Auth   *handler.AuthHandler
	Health *handler.HealthHandler
	UI     *handler.UIHandler
}

// Options controls router-wide behavior
type Options struct {
	AllowedOrigins []string
	EnableSwagger  bool
}

// Setup sets up all routes
func Setup(h *server.Hertz, handlers Handlers, opts Options, logger *slog.Logger) {
	// Global middleware
	h.Use(middleware.Recovery(logger))
	h.Use(middleware.Logger(logger))
	h.Use(middleware.CORS(opts.AllowedOrigins))

	// Access at: http://localhost:8080/swagger/index.html
	if opts.EnableSwagger {
		h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))
	}

	// Health check routes
	h.GET("/ping", handlers.Health.Ping)
	h.GET("/health/ready", handlers.Health.Readiness)
	h.GET("/health/live", handlers.Health.Liveness)

	// Browser chat page
	h.GET("/", handlers.UI.Index)

	// API routes. Registered for every verb so that the handlers answer a
	// wrong method with a JSON 405.
	api := h.Group("/api")
	{
		api.Any("/chat", handlers.Chat.Chat)
		api.Any("/auth", handlers.Auth.SignUp)
	}
}
