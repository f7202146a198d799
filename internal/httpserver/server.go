package httpserver

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ins-V/simple-todo-list/internal/auth"
	"github.com/Ins-V/simple-todo-list/internal/config"
	"github.com/Ins-V/simple-todo-list/repository"
)

// Server bundles dependencies behind the HTTP API.
type Server struct {
	Auth  *auth.Service
	Tasks *repository.TaskRepository
}

// NewRouter builds the gin engine with all routes registered. The /auth
// endpoints and the health check are open; everything under /task requires a
// valid bearer token.
func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", s.Health)

	ag := r.Group("/auth")
	{
		ag.POST("/login/", s.Login)
		ag.POST("/registration/", s.Registration)
	}

	tg := r.Group("/task", auth.Middleware(s.Auth))
	{
		tg.GET("/list/", s.ListTasks)
		tg.GET("/:id/", s.GetTask)
		tg.POST("/", s.CreateTask)
		tg.PUT("/:id/", s.UpdateTask)
		tg.DELETE("/:id/", s.DeleteTask)
	}

	return r
}

// Health reports process liveness.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Start runs the HTTP server on the configured address and returns a
// shutdown function.
func Start(cfg *config.Config, s *Server) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}

	addr := cfg.HTTP.Address
	if addr == "" {
		addr = ":8000"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{Addr: addr, Handler: NewRouter(s)}
	go func() { _ = srv.Serve(lis) }()

	return srv.Shutdown, nil
}
