// chessboard-server serves a single game over a JSON HTTP API.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/httpapi"
)

var envFile = flag.String("env", ".env", "Environment file with CHESSBOARD_* settings")

func main() {
	flag.Parse()

	cfg, err := config.LoadServerConfig(*envFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	gin.SetMode(cfg.LogLevel)

	var sessionLog io.Writer = io.Discard
	if cfg.LogLevel == config.LogDebug {
		sessionLog = os.Stderr
	}
	server := httpapi.NewServer(cfg, sessionLog)
	log.Printf("listening on %s (auto reset %v)", cfg.Addr, cfg.AutoReset)
	if err := server.Router().Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
