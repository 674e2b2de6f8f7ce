// Package httpapi exposes the register/login endpoints and the token-gated
// resource routes over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akosarev/jokesapi/internal/logging"
	"github.com/akosarev/jokesapi/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	users     *users.Service
	logger    logging.Logger
	jwtSecret []byte
	engine    *gin.Engine
}

func NewServer(a string, l logging.Logger, us *users.Service, secretKey string) *Server {
	s := &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		jwtSecret: []byte(secretKey),
	}
	s.engine = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(s.logger), Recovery(s.logger))

	api := r.Group("/api")
	api.GET("/ping", s.ping)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.registerUser)
	authGroup.POST("/login", s.loginUser)

	protected := api.Group("", Authenticate(s.jwtSecret))
	protected.GET("/jokes", s.listJokes)
	protected.GET("/users", s.listUsers)

	return r
}

// Handler exposes the router for in-process testing.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.engine}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
