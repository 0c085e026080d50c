package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownVariant     = errors.New("unknown landing variant")
	ErrCacheMiss          = errors.New("cache miss")
)

type LoginRequest struct {
	Role     string `form:"role" json:"role" validate:"required,oneof=admin employee"`
	Email    string `form:"email" json:"email" validate:"required,max=254"`
	Password string `form:"password" json:"password" validate:"required,max=128"`
}

type ProjectRef struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type UserProfile struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Role     UserRole     `json:"role"`
	Projects []ProjectRef `json:"projects"`
}

type Session struct {
	Token       string
	Role        UserRole
	User        UserProfile
	Destination string
}

// DashboardPath is where a freshly signed-in role lands.
func DashboardPath(role UserRole) string {
	switch role {
	case Admin:
		return "/admin/dashboard"
	case Employee:
		return "/employee/dashboard"
	default:
		return "/dashboard"
	}
}
