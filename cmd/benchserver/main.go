// Command benchserver exposes sudokucore over HTTP for benchmarking and
// interactive solving: POST /api/solve, GET /api/stats, GET /healthz. It
// shuts down gracefully on SIGINT/SIGTERM, giving in-flight requests a
// bounded window to finish before the listener closes.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	httpTransport "sudoku-solver/internal/transport/http"
	"sudoku-solver/internal/sudokucore"
	"sudoku-solver/internal/workerpool"
	"sudoku-solver/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	var stats sudokucore.Stats
	pool := workerpool.New(cfg.Workers, &stats)
	defer pool.Close()
	log.Printf("worker pool started with %d workers", pool.Workers())

	r := gin.Default()
	httpTransport.RegisterRoutes(r, pool)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		}
	}()

	log.Printf("starting benchserver on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("failed to start server: %v", err)
	}
}
