package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-rmrk-indexer/internal/api/middleware"
	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/logger"
	"github.com/feral-file/ff-rmrk-indexer/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// Chain is reported by /v1/cursor when no chain is requested
	Chain domain.Chain
}

// CursorResponse is the body of GET /v1/cursor
type CursorResponse struct {
	Chain     domain.Chain `json:"chain"`
	Position  string       `json:"position"`
	Block     uint64       `json:"block"`
	Extrinsic uint32       `json:"extrinsic"`
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	httpServer *http.Server
}

// New creates a new ops API server
func New(cfg Config, store store.Store) *Server {
	return &Server{
		config: cfg,
		store:  store,
	}
}

// Router builds the gin engine serving the ops endpoints
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	router.GET("/healthz", s.healthz)
	v1 := router.Group("/v1")
	v1.GET("/cursor", s.cursor)

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// cursor reports the last applied extrinsic position, optionally for ?chain=<caip-2 id>
func (s *Server) cursor(c *gin.Context) {
	chain := s.config.Chain
	if q := c.Query("chain"); q != "" {
		chain = domain.Chain(q)
	}
	if !domain.IsValidChain(chain) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported chain: %s", chain)})
		return
	}

	position, err := s.store.GetRemarkCursor(c.Request.Context(), chain)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), fmt.Errorf("failed to get remark cursor: %w", err), zap.String("chain", string(chain)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, CursorResponse{
		Chain:     chain,
		Position:  position.String(),
		Block:     position.Block,
		Extrinsic: position.Extrinsic,
	})
}
