package http

import (
	"fmt"
	"time"

	"github.com/sm8ta/cogniwork_web/internal/core/domain"
	"github.com/sm8ta/cogniwork_web/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTTokenService struct {
	secretKey []byte
	duration  time.Duration
	logger    ports.LoggerPort
	now       func() time.Time
}

func NewJWTTokenService(secretKey string, duration time.Duration, logger ports.LoggerPort) *JWTTokenService {
	return &JWTTokenService{
		secretKey: []byte(secretKey),
		duration:  duration,
		logger:    logger,
		now:       time.Now,
	}
}

// IssueToken signs the demo session token. Nothing on the request path
// verifies it; the access guard only checks that a token is present.
func (j *JWTTokenService) IssueToken(role domain.UserRole, email string) (string, error) {
	now := j.now()
	claims := jwt.MapClaims{
		"id":    uuid.NewString(),
		"role":  string(role),
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(j.duration).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		j.logger.Error("Failed to sign jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "IssueToken",
		})
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}
