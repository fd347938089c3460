package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freight-backoffice/internal/config"
	"freight-backoffice/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("Backoffice: No .env file found, relying on system env vars")
	}

	// Load config
	cfg := config.Load()

	// Start backoffice server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Printf("🌍 Backoffice server starting on %s (REST) / %s (gRPC)", cfg.HTTPAddr, cfg.GRPCAddr)
		// This blocks until server exits
		server.NewBackofficeServer(cfg)
		errCh <- nil
	}()

	// Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Println("🛑 Backoffice service shutting down gracefully...")
		_, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Backoffice service failed: %v", err)
		}
	}
}
