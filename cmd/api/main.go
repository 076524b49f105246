package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sdokania30/SayDone/config"
	_ "github.com/sdokania30/SayDone/docs" // Swagger docs
	"github.com/sdokania30/SayDone/internal/httpserver"
	"github.com/sdokania30/SayDone/internal/middleware"
	"github.com/sdokania30/SayDone/internal/parser"
	taskHTTP "github.com/sdokania30/SayDone/internal/task/delivery/http"
	"github.com/sdokania30/SayDone/internal/task/repository/memory"
	"github.com/sdokania30/SayDone/internal/task/usecase"
	"github.com/sdokania30/SayDone/pkg/gcalendar"
	"github.com/sdokania30/SayDone/pkg/log"
)

// @title       SayDone API
// @description Deterministic task extraction from free-form text, with undo history and Google Calendar scheduling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting SayDone...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task domain
	engine := parser.New(parser.DefaultConfig())
	taskRepo := memory.New()

	// Timezone anchoring "today" for requests without a pinned instant.
	loc := time.Local
	if cfg.Parser.Timezone != "" {
		parsed, tzErr := time.LoadLocation(cfg.Parser.Timezone)
		if tzErr != nil {
			logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, tzErr)
			loc = time.UTC
		} else {
			loc = parsed
		}
	}

	// Google Calendar client (optional)
	var scheduler usecase.EventScheduler
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			scheduler = calendarClient
		}
	}

	taskUC := usecase.New(logger, engine, taskRepo, scheduler, cfg.GoogleCalendar.CalendarID, loc)
	taskHandler := taskHTTP.New(logger, taskUC)
	mw := middleware.New(logger, cfg.RateLimit)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		TaskHandler: taskHandler,
		Middleware:  mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
