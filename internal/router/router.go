package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/azwatch/campfin-backend/internal/dto"
	"github.com/azwatch/campfin-backend/internal/handlers"
	"github.com/azwatch/campfin-backend/internal/middleware"
)

type Options struct {
	RateLimitInterval time.Duration
	RateLimitBurst    int
}

func NewRouter(deps *handlers.Deps, opts Options) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(middleware.MetricsMiddleware)
	r.Use(middleware.NewRateLimitMiddleware(opts.RateLimitInterval, opts.RateLimitBurst).RateLimitMiddleware)
	r.Use(chimiddleware.Recoverer)

	eh := handlers.NewEntityHandlers(deps)
	sh := handlers.NewSearchHandlers(deps)
	xh := handlers.NewExportHandlers(deps)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/entity", eh.EntityRoutes())
		r.Get("/search", sh.Search)
		r.Get("/download/entity-reports", xh.DownloadCSV(dto.ExportKindReports))
		r.Get("/download/entity-transactions", xh.DownloadCSV(dto.ExportKindTransactions))
		r.Post("/bulk-export", xh.BulkExport)
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
