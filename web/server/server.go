package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Registrar hooks a handler group into the router.
type Registrar interface {
	Register(r *gin.RouterGroup)
}

type Server struct {
	addr   string
	router *gin.Engine
}

func New(addr string, registrars ...Registrar) *Server {
	router := gin.Default()
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	group := router.Group("/")
	for _, reg := range registrars {
		reg.Register(group)
	}

	return &Server{addr: addr, router: router}
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.router}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
