// Package httpapi exposes a game session as a JSON API for browser front ends.
package httpapi

import (
	"io"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/game"
	"github.com/lgbarn/chessboard-go/internal/output"
)

// Server holds the single game served by the API.
type Server struct {
	mu      sync.Mutex
	session *game.Session
	cfg     *config.ServerConfig
	view    config.OutputConfig
}

// NewServer creates a server with a fresh game. Session diagnostics go to log.
func NewServer(cfg *config.ServerConfig, log io.Writer) *Server {
	view := *config.NewOutputConfig()
	view.ShowMoves = true
	return &Server{
		session: game.New(game.WithAutoReset(cfg.AutoReset), game.WithLog(log)),
		cfg:     cfg,
		view:    view,
	}
}

// Router builds the gin engine with CORS and the API routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(corsMiddleware(s.cfg))

	router.GET("/health", s.health)
	api := router.Group("/api")
	api.GET("/state", s.state)
	api.GET("/moves/:square", s.moves)
	api.POST("/move", s.move)
	api.POST("/reset", s.reset)
	return router
}

func corsMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	if cfg.AllowAllOrigins() {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	})
}

// snapshot converts the session to its JSON view. Callers hold s.mu.
func (s *Server) snapshot() *output.JSONState {
	return output.StateToJSON(s.session, &s.view)
}
