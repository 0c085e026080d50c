package services

import (
	"github.com/sm8ta/cogniwork_web/internal/core/domain"
	"github.com/sm8ta/cogniwork_web/internal/core/ports"
)

const (
	DefaultLoginPath = "/login"
	DefaultHomePath  = "/"
)

// AccessGuard decides whether a protected view may render. It keeps no state
// between evaluations and never writes to the identity provider.
type AccessGuard struct {
	loginPath string
	homePath  string
}

func NewAccessGuard(loginPath, homePath string) *AccessGuard {
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}
	if homePath == "" {
		homePath = DefaultHomePath
	}
	return &AccessGuard{
		loginPath: loginPath,
		homePath:  homePath,
	}
}

func (g *AccessGuard) LoginPath() string {
	return g.loginPath
}

func (g *AccessGuard) HomePath() string {
	return g.homePath
}

// Evaluate checks token presence first, then the role requirement.
func (g *AccessGuard) Evaluate(identity ports.IdentityProvider, required domain.RequiredRole) domain.Decision {
	if token, ok := identity.Token(); !ok || token == "" {
		return domain.Decision{Outcome: domain.RedirectToLogin, Destination: g.loginPath}
	}

	role, ok := identity.Role()
	if !required.Permits(role, ok) {
		return domain.Decision{Outcome: domain.RedirectToHome, Destination: g.homePath}
	}

	return domain.Decision{Outcome: domain.RenderChildren}
}
