// Package handler exposes the statistics HTTP endpoints.
package handler

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	govalidator "github.com/go-playground/validator/v10"

	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/service"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/transport"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/httpkit"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/validator"
)

// regionCodePattern matches CBS region codes: the national code, or a
// municipality, district or neighborhood code with its digit suffix.
var regionCodePattern = regexp.MustCompile(`^(NL00|GM\d{4}|WK\d{6}|BU\d{8})$`)

// Handler serves the statistics routes.
type Handler struct {
	svc      *service.Service
	validate *validator.Validator
}

func New(svc *service.Service) *Handler {
	v := validator.New()
	// Registration only fails for an empty tag.
	_ = v.RegisterValidation("regioncode", func(fl govalidator.FieldLevel) bool {
		return regionCodePattern.MatchString(fl.Field().String())
	})
	return &Handler{svc: svc, validate: v}
}

type statisticsRequest struct {
	Code   string `validate:"required,regioncode"`
	Source string `validate:"omitempty,oneof=demographics health livability safety"`
}

// Statistics handles GET /api/v1/locations/:code/statistics?source=...
// Without a source it returns the region's full profile.
func (h *Handler) Statistics(c *gin.Context) {
	req := statisticsRequest{
		Code:   c.Param("code"),
		Source: c.Query("source"),
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid region code or source", nil)
		return
	}

	if req.Source == "" {
		profile, err := h.svc.Profile(c.Request.Context(), req.Code)
		if httpkit.HandleError(c, err) {
			return
		}
		httpkit.OK(c, profile)
		return
	}

	dataset, err := h.svc.Dataset(c.Request.Context(), req.Code, transport.Source(req.Source))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, dataset)
}

// Scores handles GET /api/v1/locations/:code/scores. It returns the region's
// profile with every indicator scored against the national baseline.
func (h *Handler) Scores(c *gin.Context) {
	req := statisticsRequest{Code: c.Param("code")}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid region code", nil)
		return
	}

	profile, err := h.svc.ScoredProfile(c.Request.Context(), req.Code)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, profile)
}

// National handles GET /api/v1/statistics/national.
func (h *Handler) National(c *gin.Context) {
	profile, err := h.svc.National(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, profile)
}
