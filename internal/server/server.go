package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matthieukhl/schemapilot/internal/backend"
	"github.com/matthieukhl/schemapilot/internal/metrics"
)

type Server struct {
	router  *gin.Engine
	backend backend.Backend
	metrics *metrics.Registry
	started time.Time
}

// NewServer creates a new server instance
func NewServer(b backend.Backend, m *metrics.Registry, maxUploadBytes int64) *Server {
	router := gin.Default()
	router.MaxMultipartMemory = maxUploadBytes

	server := &Server{
		router:  router,
		backend: b,
		metrics: m,
		started: time.Now(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.Use(s.metrics.Middleware())
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/reload-check", s.reloadCheck)
		api.POST("/upload-schema", s.uploadSchema)
		api.POST("/query-schema", s.querySchema)
		api.POST("/nl2sql", s.translateQuery)
		api.POST("/execute-sql", s.executeSQL)
		api.GET("/analytics", s.analytics)
		api.GET("/documents", s.listDocuments)
		api.DELETE("/documents/:id", s.deleteDocument)
		api.POST("/clear-vector-store", s.clearVectorStore)
		api.POST("/workflow", s.workflow)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "schemapilot",
		"version": "0.1.0",
		"mode":    s.backend.Mode(),
	})
}

// reloadCheck returns the process start time so a debug frontend can detect
// server restarts.
func (s *Server) reloadCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"started": s.started.Unix()})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
