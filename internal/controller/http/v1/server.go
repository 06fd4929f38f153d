package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/kurochkinivan/data_sweepers/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      handler,
		},
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// NewRouter mounts the API under /api/v1 next to the health and metrics endpoints.
func NewRouter(
	log *slog.Logger,
	files *FilesHandler,
	conversions *ConversionsHandler,
	metrics http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/files", func(r chi.Router) {
			r.Post("/preview", files.Preview)
			r.Post("/process", files.Process)
			r.Post("/convert", files.Convert)
			r.Post("/chart", files.Chart)
			r.Post("/report", files.Report)
		})

		r.Route("/conversions", func(r chi.Router) {
			r.Get("/", conversions.List)
			r.Get("/export", conversions.Export)
			r.Get("/{name}/columns", conversions.Columns)
		})
	})

	log.Debug("http routes registered")

	return r
}
