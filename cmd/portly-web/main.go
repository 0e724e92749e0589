package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portly/internal/config"
	"portly/internal/engine"
	"portly/internal/web"
)

var (
	infoLogger  = log.New(os.Stdout, "", log.LstdFlags)
	errorLogger = log.New(os.Stderr, "", log.LstdFlags)
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		errorLogger.Fatalf("Failed to load configuration: %v", err)
	}

	handler := web.NewHandler(engine.New(), cfg, infoLogger)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.SetupRoutes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		infoLogger.Printf("portly web listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorLogger.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	infoLogger.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		errorLogger.Printf("Shutdown error: %v", err)
	}
}
