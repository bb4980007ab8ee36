// Package httpapi exposes the calendar service over HTTP. Responses use the
// JSON envelope the web client expects: {"type":"success", ...} on success
// and {"type":"failure","reason":...} otherwise. Authentication is an opaque
// token carried in a cookie.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"calendard/internal/logging"
	"calendard/internal/server/events"
	"calendard/internal/server/users"
	"github.com/gin-gonic/gin"
)

type Server struct {
	addr            string
	logger          logging.Logger
	users           *users.Service
	events          *events.Service
	cookieSecure    bool
	shutdownTimeout time.Duration
}

func NewServer(addr string, logger logging.Logger, userService *users.Service, eventService *events.Service, cookieSecure bool, shutdownTimeout time.Duration) *Server {
	return &Server{
		addr:            addr,
		logger:          logger.With("component", "httpapi"),
		users:           userService,
		events:          eventService,
		cookieSecure:    cookieSecure,
		shutdownTimeout: shutdownTimeout,
	}
}

// Router builds the gin engine with all routes attached. Exposed separately
// so tests can drive the full stack through httptest without a listener.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.POST("/signup", s.handleSignup)
	api.POST("/login", s.handleLogin)

	authed := api.Group("", s.authRequired())
	authed.GET("/users/self", s.handleSelf)
	authed.GET("/events", s.handleListEvents)
	authed.POST("/events", s.handleCreateEvent)
	authed.PATCH("/events", s.handleUpdateEvent)
	authed.DELETE("/events", s.handleDeleteEvent)
	authed.GET("/events/ics", s.handleExportICS)

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.addr, Handler: s.Router()}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.logger.Info(ctx, "server stopped")
		return nil
	}
}
