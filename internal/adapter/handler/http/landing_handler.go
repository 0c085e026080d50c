package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/cogniwork_web/internal/core/domain"
	"github.com/sm8ta/cogniwork_web/internal/core/ports"
)

type LandingHandler struct {
	landing ports.LandingService
	theme   domain.Theme
	logger  ports.LoggerPort
	metrics ports.MetricsPort
}

func NewLandingHandler(
	landing ports.LandingService,
	theme domain.Theme,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *LandingHandler {
	return &LandingHandler{
		landing: landing,
		theme:   theme,
		logger:  logger,
		metrics: metrics,
	}
}

func (h *LandingHandler) Home(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	h.renderVariant(c, domain.VariantMarketing)
}

func (h *LandingHandler) Variant(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	h.renderVariant(c, c.Param("variant"))
}

func (h *LandingHandler) renderVariant(c *gin.Context, variant string) {
	page, err := h.landing.GetPage(c.Request.Context(), variant)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownVariant) {
			c.HTML(http.StatusNotFound, "not_found", pageData(h.theme, "Not found", gin.H{
				"Message": "There is no landing page called \"" + variant + "\".",
			}))
			return
		}
		h.logger.Error("Failed to load landing page", map[string]interface{}{
			"error":   err.Error(),
			"variant": variant,
		})
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "landing_"+page.Variant, pageData(h.theme, page.Brand, gin.H{
		"Page": page,
	}))
}

// @Summary Landing page content
// @Description Static content of a landing page variant
// @Tags landing
// @Produce json
// @Param variant path string true "Variant" Enums(marketing, classic)
// @Success 200 {object} successResponse "Landing page"
// @Failure 404 {object} errorResponse "Unknown variant"
// @Router /api/v1/landing/{variant} [get]
func (h *LandingHandler) GetLanding(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	variant := c.Param("variant")
	page, err := h.landing.GetPage(c.Request.Context(), variant)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownVariant) {
			newErrorResponse(c, http.StatusNotFound, "Unknown landing variant")
			return
		}
		h.logger.Error("Failed to load landing page", map[string]interface{}{
			"error":   err.Error(),
			"variant": variant,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to load landing page")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Landing page found", page)
}

// @Summary Landing variants
// @Tags landing
// @Produce json
// @Success 200 {object} successResponse "Variant names"
// @Router /api/v1/landing [get]
func (h *LandingHandler) ListVariants(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	newSuccessResponse(c, http.StatusOK, "Landing variants", h.landing.Variants())
}

// @Summary Theme configuration
// @Description Color mode, brand palette and component defaults
// @Tags theme
// @Produce json
// @Success 200 {object} domain.Theme "Theme"
// @Router /api/v1/theme [get]
func (h *LandingHandler) GetTheme(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	c.JSON(http.StatusOK, h.theme)
}
