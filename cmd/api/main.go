package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/azwatch/campfin-backend/internal/bootstrap"
	"github.com/azwatch/campfin-backend/internal/config"
	"github.com/azwatch/campfin-backend/internal/handlers"
	"github.com/azwatch/campfin-backend/internal/response"
	"github.com/azwatch/campfin-backend/internal/router"
	"github.com/azwatch/campfin-backend/internal/services"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg, err := config.New()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	// services
	eserv := services.NewEntityService(bs.Facade)
	sserv := services.NewSearchService(bs.Facade, cfg.DefaultSearchLimit)
	xserv := services.NewExportService(bs.Facade, bs.Exporter, cfg.MaxEntityIDs)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.EntitySvc = eserv
	deps.SearchSvc = sserv
	deps.ExportSvc = xserv
	deps.DefaultPageSize = cfg.TransactionPreviewLimit

	// router
	r := router.NewRouter(deps, router.Options{
		RateLimitInterval: cfg.RateLimitInterval,
		RateLimitBurst:    cfg.RateLimitBurst,
	})

	bs.Log.Info("listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
