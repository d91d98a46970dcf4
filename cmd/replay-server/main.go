package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ducln05/futures-risk-replay/internal/server"
)

const (
	AppName    = "Replay Server"
	AppVersion = "1.0.0"
)

func main() {
	port := flag.Int("port", 8080, "HTTP listen port")
	envFile := flag.String("env", ".env", "Environment file path")
	devMode := flag.Bool("dev", false, "Development mode (pretty logs, no compression)")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}

	if err := godotenv.Load(*envFile); err != nil {
		fmt.Printf("⚠️  Could not load %s (%v)\n", *envFile, err)
	}

	log := newLogger(*devMode)

	srv := server.New(server.Config{
		Port:    *port,
		Log:     log,
		DevMode: *devMode,
	})

	// Run the server until interrupted, then drain in-flight requests.
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("Server failed")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
	log.Info().Msg("Server stopped")
}

func newLogger(devMode bool) zerolog.Logger {
	if devMode {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
