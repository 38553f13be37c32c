package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"paperbot/api"
	"paperbot/config"
	"paperbot/orchestrator"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	store, err := orchestrator.NewStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("archive store error: %v", err)
	}

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := api.NewServer(cfg, store).NewRouter()
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/archive/count")
	log.Println("  GET  /api/archive/random")
	log.Println("  GET  /api/rss/sources")
	log.Println("  POST /api/rss/refresh")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
