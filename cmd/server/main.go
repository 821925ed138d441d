package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatitude/bot"
	"chatitude/internal"
	"chatitude/repositories"
	"chatitude/runtime"
	"chatitude/runtime/workers"
	"chatitude/server"
	"chatitude/services"

	"github.com/Netflix/go-env"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes
// error reporting, so every defer fires before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	if config.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Store & Bot
	repository := repositories.NewTranscriptRepository(config.DatabaseFilepath, logger)

	var completer bot.Completer
	if config.OpenAIAPIKey != "" {
		completer = bot.NewOpenAICompleter(config.OpenAIAPIKey, config.OpenAIModel)
		logger.Info("Reasoning client initialized", "model", config.OpenAIModel)
	}
	engine := bot.NewEngine(logger, repository, completer, config.ReasoningTimeout)

	// 3. Coordinator & Transport
	registry := runtime.NewRegistry()
	messages := services.NewMessagesService(repository)
	hub := server.NewHub(logger, registry, messages, engine)
	srv := server.NewServer(logger, hub, config.ConnectionBufferSize, config.StaticDir)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Background workers under supervision
	sup := workers.NewSupervisor(logger)
	sup.Add(
		workers.NewCommentaryWorker(logger, engine, messages, hub, config.CommentaryInterval),
		workers.NewTelemetryWorker(logger, config.TelemetryInterval),
	)
	supervisorDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervisorDone)
	}()

	// 6. HTTP server
	address := fmt.Sprintf("0.0.0.0:%d", config.Port)
	httpServer := &http.Server{Addr: address, Handler: srv.Router()}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting chat server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 8. Graceful Shutdown: active connections get a grace period, then the
	// workers are drained.
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	sup.Stop()
	<-supervisorDone
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}
