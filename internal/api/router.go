package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SvyatElkind/race-report/internal/config"
	"github.com/SvyatElkind/race-report/internal/metrics"
	"github.com/SvyatElkind/race-report/internal/report"
)

// Options bundles the router dependencies.
type Options struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Reports report.Provider
	Pinger  DatabasePinger
	Version string
}

// SetupRouter builds the Gin engine with all routes and middleware.
func SetupRouter(opts Options) *gin.Engine {
	if opts.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(opts.Logger))

	if opts.Config.Server.CORSEnabled {
		r.Use(cors.Default())
	}
	if opts.Config.Server.RateLimitPerSecond > 0 {
		r.Use(RateLimit(opts.Config.Server.RateLimitPerSecond, opts.Config.Server.RateLimitBurst))
	}
	if opts.Config.Metrics.Enabled {
		r.Use(Metrics())
		r.GET(opts.Config.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	h := NewHandler(opts.Reports, opts.Logger)

	apiV1 := r.Group("/api/v1")
	{
		reportRoutes := apiV1.Group("/report")
		{
			reportRoutes.GET("/", h.GetReport)
			reportRoutes.GET("/drivers/", h.GetDrivers)
			reportRoutes.GET("/drivers/:driver_id", h.GetSingleDriver)
		}
	}

	hh := &healthHandler{
		serviceName: opts.Config.App.Name,
		version:     opts.Version,
		db:          opts.Pinger,
	}
	r.GET("/health", hh.health)
	r.GET("/ready", hh.ready)
	r.GET("/live", hh.live)

	registerDocs(r)

	// Unknown paths get the same dual-format error body as the API.
	r.NoRoute(h.NotFound)

	return r
}
