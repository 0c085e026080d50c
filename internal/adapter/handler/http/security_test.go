package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCSPConfig_Build(t *testing.T) {
	assert.Equal(t, "", CSPConfig{}.Build())
	assert.Equal(t,
		"default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; form-action 'self'; frame-ancestors 'none'",
		PageCSP().Build(),
	)
	assert.Equal(t, "default-src 'none'", CSPConfig{DefaultSrc: []string{"'none'"}, StyleSrc: []string{}}.Build())
}

func TestSecurityHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	SecurityHeaders(CSPConfig{DefaultSrc: []string{"'self'"}})(c)

	assert.Equal(t, "default-src 'self'", w.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
