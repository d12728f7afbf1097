package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/xhamera1/Hotel-app/internal/api"
	"github.com/xhamera1/Hotel-app/internal/commands"
	"github.com/xhamera1/Hotel-app/internal/config"
	"github.com/xhamera1/Hotel-app/internal/repository"
	"github.com/xhamera1/Hotel-app/internal/service"
	"github.com/xhamera1/Hotel-app/internal/utils"
	"github.com/xhamera1/Hotel-app/internal/web"
	"go.uber.org/zap"
)

func main() {
	// A missing .env is fine, the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to read .env: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("Application stopped with an error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	repo, err := repository.NewRepository(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}

	// Close the Redis connection on exit
	if closer, ok := repo.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Warn("Error closing repository", zap.Error(err))
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hotelService := service.NewHotelService(repo, logger)
	if _, err := hotelService.Load(ctx); err != nil {
		return err
	}

	var (
		server       *http.Server
		notifier     *web.RoomNotifier
		serverErrors = make(chan error, 1)
	)
	if cfg.HTTPEnabled {
		notifier = web.NewRoomNotifier(logger)
		hotelService.RegisterUpdateCallback(notifier.NotifyRoomUpdate)

		server = &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      api.NewRouter(hotelService, notifier, logger),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 0, // Disable write timeout for SSE connections
			IdleTimeout:  60 * time.Second,
		}

		go func() {
			logger.Info("Starting hotel server", zap.String("port", cfg.Port))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErrors <- err
			}
		}()
	}

	shellDone := make(chan error, 1)
	if cfg.ShellEnabled {
		shell := commands.NewShell(
			commands.NewHotelRegistry(hotelService),
			commands.NewPort(os.Stdin, os.Stdout),
			logger,
		)
		go func() {
			shellDone <- shell.Run(ctx)
		}()
	}

	var runErr error
	select {
	case err := <-serverErrors:
		runErr = fmt.Errorf("error starting server: %w", err)
	case err := <-shellDone:
		runErr = err
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	if server != nil {
		logger.Info("Shutting down server...")

		// First close the event streams so Shutdown does not wait on them
		notifier.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			server.Close()
			return errors.Join(runErr, fmt.Errorf("error shutting down server: %w", err))
		}
		logger.Info("Server gracefully stopped")
	}

	return runErr
}
