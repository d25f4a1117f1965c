package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yt-dashboard/internal/models"
	"github.com/yt-dashboard/internal/pipeline"
)

// ChannelSource is the live upstream surface used by the resolve and
// channel endpoints.
type ChannelSource interface {
	ResolveChannelID(ctx context.Context, input string) (string, error)
	FetchChannel(ctx context.Context, channelID string) (*models.Channel, error)
}

// Refresher runs the full extraction pipeline for one channel query.
type Refresher interface {
	Refresh(ctx context.Context, query string) (*pipeline.Report, error)
}

// ChannelReader reads persisted records back out of the store.
type ChannelReader interface {
	GetChannel(ctx context.Context, channelID string) (*models.Channel, error)
	ListVideos(ctx context.Context, channelID string, limit int) ([]models.VideoDetail, error)
}

// Server represents the API server
type Server struct {
	router    *gin.Engine
	source    ChannelSource
	refresher Refresher
	reader    ChannelReader
	logger    *slog.Logger
}

// NewServer creates a new API server
func NewServer(source ChannelSource, refresher Refresher, reader ChannelReader, logger *slog.Logger) *Server {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "Pragma"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	server := &Server{
		router:    router,
		source:    source,
		refresher: refresher,
		reader:    reader,
		logger:    logger,
	}

	server.setupRoutes()

	return server
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/channel/resolve", s.resolveChannel)
	s.router.GET("/channel/:id", s.getChannel)
	s.router.GET("/channel/:id/stored", s.getStoredChannel)
	s.router.POST("/channel/refresh", s.refreshChannel)
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
