package http

import (
	"context"
	"net/http"

	"github.com/anicla/anicla/internal/adapter/http/middleware"
	"github.com/anicla/anicla/internal/service"
)

type Server struct {
	mux        *http.ServeMux
	handlers   *Handlers
	sseHandler *SSEHandler
	csrf       *middleware.CSRFProtection
}

// NewServer builds the web front. runCtx bounds background classification
// runs and should live as long as the process.
func NewServer(runCtx context.Context, deps Deps, bus LogSubscriber, gate service.ConsoleGate, maxSizeMB int) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		handlers:   NewHandlers(runCtx, deps, maxSizeMB),
		sseHandler: NewSSEHandler(bus, gate),
		csrf:       middleware.NewCSRFProtection(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handlers.Home())
	s.mux.HandleFunc("GET /stage", s.handlers.Stage())
	s.mux.HandleFunc("GET /state", s.handlers.State())

	s.mux.HandleFunc("POST /select", s.handlers.Select())
	s.mux.HandleFunc("POST /drop", s.handlers.Drop())
	s.mux.HandleFunc("POST /classify", s.handlers.Classify())
	s.mux.HandleFunc("POST /new", s.handlers.NewUpload())
	s.mux.HandleFunc("GET /preview/{id}", s.handlers.Preview())

	s.mux.HandleFunc("POST /settings", s.handlers.Settings())

	s.mux.HandleFunc("GET /console", s.handlers.ConsolePage())
	s.mux.HandleFunc("GET /console/entries", s.handlers.ConsoleEntries())
	s.mux.HandleFunc("POST /console/clear", s.handlers.ClearConsole())
	s.mux.HandleFunc("GET /events/console", s.sseHandler.Console())

	s.mux.HandleFunc("GET /history", s.handlers.History())
	s.mux.HandleFunc("GET /library/{hash}/thumb", s.handlers.Thumbnail())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	middleware.RequestLog(middleware.SecurityHeaders(s.csrf.Middleware(s.mux))).ServeHTTP(w, r)
}
