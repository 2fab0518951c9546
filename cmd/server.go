//go:build !integration

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bitbucket.org/crgw/stayzen-backend/internal/tools/mongofactory"
	"bitbucket.org/crgw/stayzen-backend/internal/web"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func newLogger(level string) *zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).Level(logLevel).With().Timestamp().Logger()

	return &logger
}

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	shutdown := false
	done := make(chan error, 1)
	stop := make(chan os.Signal, 1)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		// Wait for stop
		<-stop
		shutdown = true
		logger.Info().Msg("Shutting down server...")
		_ = httpServer.Shutdown(context.Background())
	}()

	// Notify stop channel if SIGINT or SIGTERM is received
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	err := <-done
	if err != nil && !shutdown {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	return 0
}

func main() {
	_ = godotenv.Load(".env")
	log := newLogger(os.Getenv("LOG_LEVEL"))

	mongoFactory := mongofactory.New()

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mongoFactory.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Msg("Could not reach MongoDB on startup")
	} else {
		log.Info().Msg("Connected to MongoDB")
	}
	cancel()

	appRouter := web.SetupRouter(log, mongoFactory)

	var host string
	if os.Getenv("TEST") == "true" {
		host = "localhost"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", host, port),
		Handler: appRouter,
	}

	code := serverApp(httpServer, log)
	_ = mongoFactory.Disconnect(context.Background())
	os.Exit(code)
}
