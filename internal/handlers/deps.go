package handlers

import (
	"log/slog"

	"github.com/azwatch/campfin-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	EntitySvc       entityService
	SearchSvc       searchService
	ExportSvc       exportService

	// DefaultPageSize is the paginated-endpoint page size (the report-detail
	// preview cap; a product constraint, so configurable).
	DefaultPageSize int
}
