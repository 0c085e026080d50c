package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/cogniwork_web/internal/core/domain"
	"github.com/sm8ta/cogniwork_web/internal/core/ports"
	"github.com/sm8ta/cogniwork_web/internal/core/services"
)

type GuardMiddleware struct {
	guard   *services.AccessGuard
	keys    IdentityKeys
	logger  ports.LoggerPort
	metrics ports.MetricsPort
}

func NewGuardMiddleware(
	guard *services.AccessGuard,
	keys IdentityKeys,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *GuardMiddleware {
	return &GuardMiddleware{
		guard:   guard,
		keys:    keys,
		logger:  logger,
		metrics: metrics,
	}
}

// Require gates the rest of the handler chain. Denied requests are
// redirected and never reach the wrapped handlers.
func (m *GuardMiddleware) Require(required domain.RequiredRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := NewCookieIdentity(c, m.keys)
		decision := m.guard.Evaluate(identity, required)
		m.metrics.RecordGuardDecision(decision.Outcome)

		// Guarded responses must not be restorable from the browser cache.
		c.Header("Cache-Control", "no-store")

		if decision.Allowed() {
			token, _ := identity.Token()
			role, _ := identity.Role()
			c.Set(identityClaimsKey, domain.Claims{Token: token, Role: role})
			c.Next()
			return
		}

		m.logger.Info("Access guard redirect", map[string]interface{}{
			"path":     c.Request.URL.Path,
			"required": required.String(),
			"outcome":  decision.Outcome.String(),
			"to":       decision.Destination,
			"ip":       c.ClientIP(),
		})

		c.Redirect(redirectStatus(c.Request.Method), decision.Destination)
		c.Abort()
	}
}

// Fallback sends requests for unknown paths to the login page.
func (m *GuardMiddleware) Fallback() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Redirect(redirectStatus(c.Request.Method), m.guard.LoginPath())
		c.Abort()
	}
}

// redirectStatus keeps GET/HEAD as 302 and turns every other method into a
// GET on the destination.
func redirectStatus(method string) int {
	if method == http.MethodGet || method == http.MethodHead {
		return http.StatusFound
	}
	return http.StatusSeeOther
}
