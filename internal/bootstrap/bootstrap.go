package bootstrap

import (
	"log/slog"

	cache "github.com/patrickmn/go-cache"

	bulkexportclient "github.com/azwatch/campfin-backend/internal/client/bulkexport"
	supabaseclient "github.com/azwatch/campfin-backend/internal/client/supabase"
	"github.com/azwatch/campfin-backend/internal/config"
	"github.com/azwatch/campfin-backend/pkg/logger"
)

type Bootstrap struct {
	Log      *slog.Logger
	Facade   *supabaseclient.Adapter
	Exporter *bulkexportclient.Adapter
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewJSONHandler)

	responseCache := cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	bs.Facade = supabaseclient.NewAdapter(cfg.SupabaseURL, cfg.ServiceRoleKey, responseCache, cfg.CacheTTL)
	bs.Exporter = bulkexportclient.NewAdapter(cfg.SupabaseURL, cfg.AnonKey)

	return bs, nil
}
