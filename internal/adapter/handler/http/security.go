package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CSPConfig holds Content Security Policy directives.
type CSPConfig struct {
	DefaultSrc     []string
	StyleSrc       []string
	ImgSrc         []string
	FormAction     []string
	FrameAncestors []string
}

// Build compiles the directives that have values, e.g.
// "default-src 'self'; frame-ancestors 'none'".
func (c CSPConfig) Build() string {
	directives := []struct {
		name   string
		values []string
	}{
		{"default-src", c.DefaultSrc},
		{"style-src", c.StyleSrc},
		{"img-src", c.ImgSrc},
		{"form-action", c.FormAction},
		{"frame-ancestors", c.FrameAncestors},
	}

	var parts []string
	for _, d := range directives {
		if len(d.values) == 0 {
			continue
		}
		parts = append(parts, d.name+" "+strings.Join(d.values, " "))
	}
	return strings.Join(parts, "; ")
}

// PageCSP allows the inline styles and remote hero image the pages use.
func PageCSP() CSPConfig {
	return CSPConfig{
		DefaultSrc:     []string{"'self'"},
		StyleSrc:       []string{"'self'", "'unsafe-inline'"},
		ImgSrc:         []string{"'self'", "data:", "https:"},
		FormAction:     []string{"'self'"},
		FrameAncestors: []string{"'none'"},
	}
}

func SecurityHeaders(cfg CSPConfig) gin.HandlerFunc {
	policy := cfg.Build()
	return func(c *gin.Context) {
		c.Header("Content-Security-Policy", policy)
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "same-origin")
		c.Next()
	}
}
