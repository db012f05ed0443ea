/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the Chargeboard server. Handles configuration,
  dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load optional .env file
  2. Parse command-line flags (flags win over env)
  3. Open the SQLite key-value store
  4. Build store -> service -> session
  5. Warm the session with the initial list call
  6. Start the HTTP server with graceful shutdown

CONFIGURATION:
  -port / PORT       HTTP server port (default: 8080)
  -db   / DB_PATH    SQLite database path (default: chargeboard.db)
                     Use ":memory:" for an in-memory database

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the database
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - store/store.go: Snapshot store semantics
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/supersharkz/chargeboard/api"
	"github.com/supersharkz/chargeboard/kv/sqlite"
	"github.com/supersharkz/chargeboard/service"
	"github.com/supersharkz/chargeboard/session"
	"github.com/supersharkz/chargeboard/store"
)

func main() {
	// .env is optional; flags override it.
	_ = godotenv.Load()

	port := flag.Int("port", envInt("PORT", 8080), "HTTP server port")
	dbPath := flag.String("db", envStr("DB_PATH", "chargeboard.db"), "SQLite database path")
	flag.Parse()

	db, err := sqlite.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	charges := store.New(db, store.DefaultConfig())
	svc := service.New(charges)
	sess := session.New(svc)
	sess.Load(context.Background())
	if msg := sess.Err(); msg != "" {
		log.Printf("Warning: %s", msg)
	}

	handler := api.NewHandler(sess)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
