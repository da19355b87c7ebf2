package server

import (
	"github.com/gin-gonic/gin"

	"github.com/0jiuxian0/clock-in-out-statistics/internal/config"
	"github.com/0jiuxian0/clock-in-out-statistics/internal/server/handlers"
)

// Server HTTP服务器
type Server struct {
	router   *gin.Engine
	handlers *handlers.Handlers
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router:   gin.Default(),
		handlers: handlers.NewHandlers(cfg),
	}

	s.setupRoutes()

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		s.handlers.RegisterRoutes(api)
	}
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
