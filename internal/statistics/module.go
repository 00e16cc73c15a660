// Package statistics assembles the statistics bounded context: upstream
// clients, the parse/score pipeline and the HTTP routes.
package statistics

import (
	apphttp "github.com/Pleijten-dev/GroosHub-sub002/internal/http"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/client"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/handler"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/scoring"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/service"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/cache"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/config"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/logger"
)

// Module wires the statistics HTTP routes.
type Module struct {
	handler *handler.Handler
}

func NewModule(cfg config.StatisticsConfig, store cache.Store, overrides scoring.Overrides, log *logger.Logger) *Module {
	c := client.New(cfg, log)
	svc := service.New(c, store, overrides, cfg, log)
	return &Module{handler: handler.New(svc)}
}

func (m *Module) Name() string {
	return "statistics"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	locations := ctx.V1.Group("/locations")
	locations.GET("/:code/statistics", m.handler.Statistics)
	locations.GET("/:code/scores", m.handler.Scores)

	ctx.V1.GET("/statistics/national", m.handler.National)
}

var _ apphttp.Module = (*Module)(nil)
