package locations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pleijten-dev/GroosHub-sub002/platform/httpkit"
)

// Handler exposes the location search endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Search handles GET /api/v1/locations/search?q=...
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'q' is required (min 2 chars)", nil)
		return
	}

	results, err := h.svc.Search(c.Request.Context(), req.Query)
	if err != nil {
		httpkit.Error(c, http.StatusBadGateway, "location search service unavailable", nil)
		return
	}

	httpkit.OK(c, results)
}
