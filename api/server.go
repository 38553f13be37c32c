// Package api exposes archive and feed state over HTTP for operational
// checks, plus a trigger for an on-demand run.
package api

import (
	"context"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"paperbot/archive"
	"paperbot/config"
	"paperbot/orchestrator"
)

// Server holds the dependencies shared by the route handlers.
type Server struct {
	cfg   *config.Config
	store archive.Store

	// refresh runs one fetch-dedupe-publish cycle; replaceable in tests.
	refresh         func(context.Context, *config.Config) error
	refreshInFlight atomic.Bool
}

// NewServer creates an API server over the given archive store.
func NewServer(cfg *config.Config, store archive.Store) *Server {
	return &Server{cfg: cfg, store: store, refresh: orchestrator.RunOnce}
}

// NewRouter constructs a Gin engine with registered routes.
func (s *Server) NewRouter() *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	s.registerHealthRoutes(r)
	s.registerArchiveRoutes(r)
	s.registerRSSRoutes(r)
	return r
}
