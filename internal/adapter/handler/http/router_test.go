package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/cogniwork_web/internal/adapter/redis"
	"github.com/sm8ta/cogniwork_web/internal/config"
	"github.com/sm8ta/cogniwork_web/internal/core/domain"
	"github.com/sm8ta/cogniwork_web/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	logger := nopLogger{}
	metrics := &recordingMetrics{}
	theme := domain.DefaultTheme()
	keys := DefaultIdentityKeys()

	tokens := NewJWTTokenService("secret", time.Hour, logger)
	sessions := services.NewSessionService(tokens, logger, validator.New(), services.DemoAccount{
		Email:    "admin@cogniwork.dev",
		Password: "admin123",
	})
	landing := services.NewLandingService(logger, redis.NoopCache{}, time.Minute)
	guard := services.NewAccessGuard("/login", "/")

	router, err := NewRouter(
		&config.HTTP{Env: "test", Port: "8080", AllowedOrigins: "http://localhost:5173"},
		NewGuardMiddleware(guard, keys, logger, metrics),
		NewLandingHandler(landing, theme, logger, metrics),
		NewAuthHandler(sessions, keys, "/login", time.Hour, false, theme, logger, metrics),
		NewDashboardHandler(keys, theme, logger, metrics),
	)
	require.NoError(t, err)
	return router
}

func serve(r *Router, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, req)
	return w
}

func loginForm(role, email, password string) *http.Request {
	form := url.Values{}
	form.Set("role", role)
	form.Set("email", email)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withCookies(req *http.Request, cookies []*http.Cookie) *http.Request {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_LandingPages(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Transform Your Workplace with Intelligent Performance Management")
	assert.Contains(t, body, "Contact Sales")
	assert.Contains(t, body, "$99")
	assert.Contains(t, body, "MOST POPULAR")
	assert.Contains(t, body, "#007fff")
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))

	w = serve(r, httptest.NewRequest(http.MethodGet, "/landing/classic", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "What it does")
	assert.Contains(t, w.Body.String(), "Want to review quickly?")

	w = serve(r, httptest.NewRequest(http.MethodGet, "/landing/retro", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestRouter_GuardedPagesWithoutSession(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/dashboard", "/admin/dashboard", "/employee/dashboard", "/api/v1/me"} {
		w := serve(r, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"), path)
	}
}

func TestRouter_EmployeeLoginFlow(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, loginForm("employee", "someone@example.com", "pw"))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/employee/dashboard", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	token := cookieByName(cookies, "token")
	require.NotNil(t, token)
	assert.NotEmpty(t, token.Value)
	assert.True(t, token.HttpOnly)
	role := cookieByName(cookies, "role")
	require.NotNil(t, role)
	assert.Equal(t, "employee", role.Value)
	require.NotNil(t, cookieByName(cookies, "user"))

	w = serve(r, withCookies(httptest.NewRequest(http.MethodGet, "/employee/dashboard", nil), cookies))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Employee Dashboard")
	assert.Contains(t, w.Body.String(), "Demo Employee")
	assert.Contains(t, w.Body.String(), "Demo Project")

	w = serve(r, withCookies(httptest.NewRequest(http.MethodGet, "/dashboard", nil), cookies))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, withCookies(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), cookies))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRouter_AdminLoginFlow(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, loginForm("admin", "admin@cogniwork.dev", "admin123"))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	cookies := w.Result().Cookies()

	w = serve(r, withCookies(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), cookies))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Admin Dashboard")
	assert.Contains(t, w.Body.String(), "Admin User")

	w = serve(r, withCookies(httptest.NewRequest(http.MethodGet, "/employee/dashboard", nil), cookies))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRouter_LoginFailures(t *testing.T) {
	tests := []struct {
		name    string
		req     *http.Request
		status  int
		message string
	}{
		{"wrong admin password", loginForm("admin", "admin@cogniwork.dev", "guess"), http.StatusUnauthorized, "Invalid Admin Credentials"},
		{"missing role", loginForm("", "someone@example.com", "pw"), http.StatusBadRequest, "Select a role"},
		{"missing employee password", loginForm("employee", "someone@example.com", ""), http.StatusBadRequest, "Enter valid employee credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t)

			w := serve(r, tt.req)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
			assert.Nil(t, cookieByName(w.Result().Cookies(), "token"))
		})
	}
}

func TestRouter_Logout(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodPost, "/logout", nil))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	token := cookieByName(w.Result().Cookies(), "token")
	require.NotNil(t, token)
	assert.Less(t, token.MaxAge, 0)
}

func TestRouter_ThemeAPI(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/theme", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var theme struct {
		Config struct {
			InitialColorMode string `json:"initialColorMode"`
		} `json:"config"`
		Colors map[string]map[string]string `json:"colors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &theme))
	assert.Equal(t, "light", theme.Config.InitialColorMode)
	assert.Equal(t, "#007fff", theme.Colors["brand"]["600"])
}

func TestRouter_LandingAPI(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/landing/marketing", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool               `json:"success"`
		Data    domain.LandingPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data.Plans, 3)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/landing/retro", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/landing", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `["classic","marketing"]`)
}

func TestRouter_SessionAPI(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session",
		strings.NewReader(`{"role":"admin","email":"admin@cogniwork.dev","password":"admin123"}`))
	req.Header.Set("Content-Type", "application/json")

	w := serve(r, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var session SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, "admin", session.Role)
	assert.Equal(t, "/admin/dashboard", session.Destination)
	assert.NotEmpty(t, session.Token)
	cookies := w.Result().Cookies()

	w = serve(r, withCookies(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil), cookies))
	require.Equal(t, http.StatusOK, w.Code)
	var me MeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "admin", me.Role)
	require.NotNil(t, me.User)
	assert.Equal(t, "Admin User", me.User.Name)

	bad := httptest.NewRequest(http.MethodPost, "/api/v1/session", strings.NewReader(`{"role":"admin","email":"admin@cogniwork.dev","password":"x"}`))
	bad.Header.Set("Content-Type", "application/json")
	w = serve(r, bad)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodDelete, "/api/v1/session", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRouter_UnknownPathsRedirectToLogin(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/does-not-exist", http.StatusFound},
		{http.MethodHead, "/admin/settings", http.StatusFound},
		{http.MethodPost, "/nowhere", http.StatusSeeOther},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(r, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "/login", w.Header().Get("Location"))
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		})
	}
}
