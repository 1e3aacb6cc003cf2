package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	_ "github.com/lvyanru/aida-chat/docs" // swagger docs
	"github.com/lvyanru/aida-chat/internal/config"
	"github.com/lvyanru/aida-chat/internal/handler"
	"github.com/lvyanru/aida-chat/internal/infrastructure/backend"
	"github.com/lvyanru/aida-chat/internal/infrastructure/gotrue"
	"github.com/lvyanru/aida-chat/internal/router"
	"github.com/lvyanru/aida-chat/internal/usecase"
	"github.com/lvyanru/aida-chat/pkg/logger"
)

//	@title			AIDA Chat Proxy
//	@version		0.1.0
//	@description	Chat proxy and signup API for the AIDA conference assistant

//	@BasePath	/

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "aida-server",
	Short: "AIDA conference assistant chat proxy",
	Long: `aida-server serves the AIDA browser chat page and proxies its two API calls:
POST /api/chat to the conference assistant backend and POST /api/auth to the
auth provider's signup endpoint.`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file (default: ./configs/config.yaml if present)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.Setup(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	appLogger.Info("AIDA server starting...",
		"version", version,
		"config", cfgFile,
	)

	// Setup Hertz to use slog
	hlog.SetLogger(logger.NewHertzSlogAdapter(appLogger))
	hlog.SetLevel(hlog.LevelInfo)

	backendClient, err := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	if err != nil {
		appLogger.Error("failed to create backend client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := backendClient.Health(ctx); err != nil {
		appLogger.Warn("chat backend is not reachable yet, chat requests will fail until it is",
			"backend_url", cfg.Backend.BaseURL,
			"error", err,
		)
	}
	cancel()

	authClient, err := gotrue.NewClient(cfg.Auth.URL, cfg.Auth.AnonKey)
	if err != nil {
		appLogger.Error("failed to create auth provider client", "error", err)
		os.Exit(1)
	}
	if !cfg.AuthConfigured() {
		appLogger.Warn("auth provider URL or key missing, signup will be unavailable")
	}

	chatHandler := handler.NewChatHandler(usecase.NewChatUsecase(backendClient, appLogger), appLogger)
	authHandler := handler.NewAuthHandler(usecase.NewAuthUsecase(authClient, appLogger), appLogger)

	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.GetReadTimeout()),
		server.WithWriteTimeout(cfg.GetWriteTimeout()),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	router.Setup(h, router.Handlers{
		Chat:   chatHandler,
		Auth:   authHandler,
		Health: handler.NewHealthHandler(backendClient),
		UI:     handler.NewUIHandler(),
	}, router.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableSwagger:  cfg.Server.Mode == "debug",
	}, appLogger)

	appLogger.Info("server started",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
		"backend_url", cfg.Backend.BaseURL,
	)

	// Graceful shutdown
	go func() {
		if err := h.Run(); err != nil {
			appLogger.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		appLogger.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	appLogger.Info("server stopped gracefully")
}
