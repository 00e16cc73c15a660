package locations

import (
	apphttp "github.com/Pleijten-dev/GroosHub-sub002/internal/http"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/config"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/logger"
)

// Module wires the location search HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.LocationsConfig, log *logger.Logger) *Module {
	svc := NewService(cfg, log)
	h := NewHandler(svc)
	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "locations"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/locations")
	group.GET("/search", m.handler.Search)
}

var _ apphttp.Module = (*Module)(nil)
