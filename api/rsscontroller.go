package api

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"paperbot/sources"
)

func (s *Server) registerRSSRoutes(r *gin.Engine) {
	g := r.Group("/api/rss")
	g.GET("/sources", s.handleSources)
	g.POST("/refresh", s.handleRefresh)
}

// handleSources lists the journal feeds the bot follows.
func (s *Server) handleSources(c *gin.Context) {
	c.JSON(http.StatusOK, sources.Defaults())
}

// handleRefresh triggers a full fetch-dedupe-publish cycle. It runs
// asynchronously and returns 202 Accepted immediately. Only one cycle may
// run at a time; a request arriving while one is in flight gets 409.
func (s *Server) handleRefresh(c *gin.Context) {
	if !s.refreshInFlight.CompareAndSwap(false, true) {
		c.JSON(http.StatusConflict, gin.H{"status": "refresh already running"})
		return
	}

	go func() {
		defer s.refreshInFlight.Store(false)
		if err := s.refresh(context.Background(), s.cfg); err != nil {
			log.Printf("refresh run failed: %v", err)
		}
	}()
	c.JSON(http.StatusAccepted, gin.H{"status": "refresh started"})
}
