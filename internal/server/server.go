// Package server is the HTTP boundary: routing, CORS and multipart handling
// around the matching pipeline.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seedhiai/resume-matcher/internal/events"
	"github.com/seedhiai/resume-matcher/internal/match"
)

// Server holds the shared collaborators every request reads from.
type Server struct {
	engine *match.Engine
	log    *zap.Logger
	events *events.Publisher
}

// New creates the Server with its injected dependencies. events may be nil.
func New(engine *match.Engine, log *zap.Logger, pub *events.Publisher) *Server {
	return &Server{engine: engine, log: log, events: pub}
}

// Router builds the gin engine with permissive CORS for frontend requests.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(cfg))

	r.GET("/", s.root)
	r.POST("/match-resume", s.matchResume)

	return r
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "resume matcher backend is running"})
}
