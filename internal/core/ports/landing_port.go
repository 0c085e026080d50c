package ports

import (
	"context"

	"github.com/sm8ta/cogniwork_web/internal/core/domain"
)

type LandingService interface {
	GetPage(ctx context.Context, variant string) (*domain.LandingPage, error)
	Variants() []string
	InvalidateCache(ctx context.Context) error
}
