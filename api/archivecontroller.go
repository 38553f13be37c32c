package api

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// registerArchiveRoutes exposes read-only views over the posted-paper
// archive.
func (s *Server) registerArchiveRoutes(r *gin.Engine) {
	g := r.Group("/api/archive")
	g.GET("/count", s.handleArchiveCount)
	g.GET("/random", s.handleArchiveRandom)
}

// handleArchiveCount reports how many papers the bot has posted so far.
func (s *Server) handleArchiveCount(c *gin.Context) {
	arch, err := s.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": arch.Len()})
}

// handleArchiveRandom returns one archived paper, the same uniform pick
// the fallback branch makes.
func (s *Server) handleArchiveRandom(c *gin.Context) {
	arch, err := s.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	paper, ok := arch.Random(rand.New(rand.NewSource(time.Now().UnixNano())))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "archive is empty"})
		return
	}
	c.JSON(http.StatusOK, paper)
}
