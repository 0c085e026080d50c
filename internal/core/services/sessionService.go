package services

import (
	"context"
	"fmt"

	"github.com/sm8ta/cogniwork_web/internal/core/domain"
	"github.com/sm8ta/cogniwork_web/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type DemoAccount struct {
	Email    string
	Password string
}

type SessionService struct {
	tokens   ports.TokenService
	logger   ports.LoggerPort
	validate *validator.Validate
	admin    DemoAccount
}

func NewSessionService(
	tokens ports.TokenService,
	logger ports.LoggerPort,
	validate *validator.Validate,
	admin DemoAccount,
) *SessionService {
	return &SessionService{
		tokens:   tokens,
		logger:   logger,
		validate: validate,
		admin:    admin,
	}
}

// Login checks the demo credentials. Admins must match the configured demo
// account; employees only need a non-empty email and password. Values are
// compared as entered.
func (s *SessionService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.Session, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Login validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	role := domain.UserRole(req.Role)
	var user domain.UserProfile

	switch role {
	case domain.Admin:
		if req.Email != s.admin.Email || req.Password != s.admin.Password {
			s.logger.Warn("Invalid admin credentials", map[string]interface{}{
				"email": req.Email,
			})
			return nil, domain.ErrInvalidCredentials
		}
		user = domain.UserProfile{
			Name:     "Admin User",
			Email:    req.Email,
			Role:     domain.Admin,
			Projects: []domain.ProjectRef{},
		}
	case domain.Employee:
		user = domain.UserProfile{
			Name:  "Demo Employee",
			Email: req.Email,
			Role:  domain.Employee,
			Projects: []domain.ProjectRef{
				{Name: "Demo Project", Status: "planning"},
			},
		}
	default:
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(role, req.Email)
	if err != nil {
		s.logger.Error("Failed to issue token", map[string]interface{}{
			"error": err.Error(),
			"role":  role,
		})
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("Login successful", map[string]interface{}{
		"email": req.Email,
		"role":  role,
	})

	return &domain.Session{
		Token:       token,
		Role:        role,
		User:        user,
		Destination: domain.DashboardPath(role),
	}, nil
}
