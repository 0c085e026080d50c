package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/cogniwork_web/internal/core/domain"
	"github.com/sm8ta/cogniwork_web/internal/core/ports"
)

type DashboardHandler struct {
	keys    IdentityKeys
	theme   domain.Theme
	logger  ports.LoggerPort
	metrics ports.MetricsPort
}

type MeResponse struct {
	Role string              `json:"role,omitempty" example:"admin"`
	User *domain.UserProfile `json:"user,omitempty"`
}

func NewDashboardHandler(
	keys IdentityKeys,
	theme domain.Theme,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *DashboardHandler {
	return &DashboardHandler{
		keys:    keys,
		theme:   theme,
		logger:  logger,
		metrics: metrics,
	}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	claims, _ := getIdentityClaims(c)

	heading := "Dashboard"
	switch domain.UserRole(claims.Role) {
	case domain.Admin:
		heading = "Admin Dashboard"
	case domain.Employee:
		heading = "Employee Dashboard"
	}

	c.HTML(http.StatusOK, "dashboard", pageData(h.theme, heading, gin.H{
		"Heading": heading,
		"Role":    claims.Role,
		"User":    h.storedUser(c),
	}))
}

// @Summary Current identity
// @Description Role and profile stored by the demo sign-in
// @Tags session
// @Produce json
// @Success 200 {object} MeResponse "Stored identity"
// @Failure 302 "Redirect to login when no token is stored"
// @Router /api/v1/me [get]
func (h *DashboardHandler) Me(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	claims, exists := getIdentityClaims(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		Role: claims.Role,
		User: h.storedUser(c),
	})
}

// storedUser returns nil when the profile cookie is missing or unreadable.
func (h *DashboardHandler) storedUser(c *gin.Context) *domain.UserProfile {
	raw, err := c.Cookie(h.keys.User)
	if err != nil || raw == "" {
		return nil
	}

	var user domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		h.logger.Warn("Unreadable user profile cookie", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return &user
}
