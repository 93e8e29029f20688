package http

import (
	"fmt"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akulagin/codeshare-server/internal/config"
	"github.com/akulagin/codeshare-server/internal/core"
	"github.com/akulagin/codeshare-server/internal/store"
)

// NewServer builds the HTTP server carrying the REST surface and the
// WebSocket session endpoint.
func NewServer(sessions *core.SessionManager, directory store.Directory, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.CORSOrigins))

	router.GET("/health", healthHandler)

	rooms := NewRoomHandlers(directory, logger)
	router.POST("/rooms", rooms.CreateRoom)
	router.GET("/rooms", rooms.ListRooms)

	autocomplete := NewSuggestHandlers(logger)
	router.POST("/autocomplete", autocomplete.Autocomplete)

	ws := NewWSHandler(sessions, directory, logger)
	router.GET("/ws/:room_id", ws.Handle)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	_, _ = fmt.Fprint(c.Writer, "ok")
}
