package ports

import (
	"context"

	"github.com/sm8ta/cogniwork_web/internal/core/domain"
)

// IdentityProvider exposes the identity claims held in client storage.
// A false second return means the slot is absent.
type IdentityProvider interface {
	Token() (string, bool)
	Role() (string, bool)
}

type TokenService interface {
	IssueToken(role domain.UserRole, email string) (string, error)
}

type SessionService interface {
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.Session, error)
}
