package main

import (
	"fmt"
	"net/http"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/cache"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/config"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/database"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/discovery"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/endpoint"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/metrics"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/middleware"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/repository"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/service"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/transport"
)

// Routes wires storage, cache, services and middleware into the root
// HTTP handler.
func Routes(logger log.Logger, m *metrics.Metrics) (http.Handler, error) {
	general := config.AppConfigInstance.GeneralConfig

	campaigns, directory, err := buildStorage(logger)
	if err != nil {
		return nil, err
	}

	instrumented := repository.NewInstrumentedRepository(campaigns, directory, m)
	campaigns, directory = instrumented, instrumented

	// Cache failures degrade to uncached storage rather than failing boot.
	cacheConfig := config.GetCacheConfig()
	if hybrid, err := cache.NewHybridCache(cacheConfig); err != nil {
		logger.Log("msg", "cache disabled", "err", err)
	} else {
		cached := cache.NewCachedRepository(campaigns, directory, hybrid, cacheConfig.DefaultTTL)
		campaigns, directory = cached, cached
	}

	var portalService service.PortalService
	portalService = service.NewPortalService(campaigns, directory)
	portalService = middleware.NewLoggingMiddleware(logger)(portalService)
	portalService = middleware.NewServiceMetricsMiddleware(m)(portalService)

	var opts []discovery.Option
	if general.DemoSeeding {
		opts = append(opts, discovery.WithSeeder(discovery.DemoSeeder{}))
	}
	var talentService service.TalentService
	talentService = service.NewTalentService(directory, opts...)
	talentService = middleware.NewTalentMetricsMiddleware(m)(talentService)

	portalEndpoints := endpoint.MakePortalEndpoints(portalService)
	talentEndpoints := endpoint.MakeTalentEndpoints(talentService)
	apiHandler := transport.NewHTTPHandler(portalEndpoints, talentEndpoints, logger)

	root := http.NewServeMux()
	root.Handle("/metrics", promhttp.Handler())
	root.Handle("/", apiHandler)

	handler := middleware.NewMetricsMiddleware(m).Middleware(root)
	handler = middleware.NewRequestIDMiddleware().Middleware(handler)
	return handler, nil
}

// buildStorage selects the campaign store from configuration. The
// memory store ships seeded demo data; postgres runs migrations first.
func buildStorage(logger log.Logger) (service.CampaignRepository, service.CreatorDirectory, error) {
	general := config.AppConfigInstance.GeneralConfig

	switch general.Storage {
	case "postgres":
		db, err := database.NewConnection(config.AppConfigInstance.DatabaseConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		migrations := database.NewMigrationManager(db, config.AppConfigInstance.DatabaseConfig.MigrationsDir)
		if err := migrations.Up(); err != nil {
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		repo := repository.NewPostgresRepository(db)
		logger.Log("msg", "using postgres storage")
		return repo, repo, nil
	default:
		repo := repository.NewSeededRepository()
		logger.Log("msg", "using seeded memory storage")
		return repo, repo, nil
	}
}
