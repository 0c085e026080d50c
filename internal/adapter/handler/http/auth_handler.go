package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/cogniwork_web/internal/core/domain"
	"github.com/sm8ta/cogniwork_web/internal/core/ports"
)

type AuthHandler struct {
	sessions  ports.SessionService
	keys      IdentityKeys
	loginPath string
	tokenTTL  time.Duration
	secure    bool
	theme     domain.Theme
	logger    ports.LoggerPort
	metrics   ports.MetricsPort
}

type SessionResponse struct {
	Token       string             `json:"token"`
	Role        string             `json:"role" example:"employee"`
	User        domain.UserProfile `json:"user"`
	Destination string             `json:"destination" example:"/employee/dashboard"`
}

func NewAuthHandler(
	sessions ports.SessionService,
	keys IdentityKeys,
	loginPath string,
	tokenTTL time.Duration,
	secure bool,
	theme domain.Theme,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		sessions:  sessions,
		keys:      keys,
		loginPath: loginPath,
		tokenTTL:  tokenTTL,
		secure:    secure,
		theme:     theme,
		logger:    logger,
		metrics:   metrics,
	}
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	h.renderLogin(c, http.StatusOK, "", &domain.LoginRequest{})
}

func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req domain.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("Failed form parse in login", map[string]interface{}{
			"error": err.Error(),
		})
		h.renderLogin(c, http.StatusBadRequest, "Invalid form submission", &req)
		return
	}

	session, err := h.sessions.Login(c.Request.Context(), &req)
	if err != nil {
		status, message := loginFailure(err, req.Role)
		h.renderLogin(c, status, message, &req)
		return
	}

	h.storeSession(c, session)
	c.Redirect(http.StatusSeeOther, session.Destination)
}

// @Summary Demo sign-in
// @Description Checks demo credentials and stores the token and role cookies
// @Tags session
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "Credentials"
// @Success 201 {object} SessionResponse "Session created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Invalid credentials"
// @Router /api/v1/session [post]
func (h *AuthHandler) CreateSession(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed JSON parse in create session", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	session, err := h.sessions.Login(c.Request.Context(), &req)
	if err != nil {
		status, message := loginFailure(err, req.Role)
		newErrorResponse(c, status, message)
		return
	}

	h.storeSession(c, session)
	c.JSON(http.StatusCreated, SessionResponse{
		Token:       session.Token,
		Role:        string(session.Role),
		User:        session.User,
		Destination: session.Destination,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	h.clearSession(c)
	c.Redirect(http.StatusSeeOther, h.loginPath)
}

// @Summary Sign out
// @Tags session
// @Success 204 "Session cleared"
// @Router /api/v1/session [delete]
func (h *AuthHandler) DeleteSession(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	h.clearSession(c)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) storeSession(c *gin.Context, session *domain.Session) {
	maxAge := int(h.tokenTTL.Seconds())

	user, err := json.Marshal(session.User)
	if err != nil {
		h.logger.Warn("Failed to marshal user profile", map[string]interface{}{
			"error": err.Error(),
		})
		user = nil
	}

	// Identity claims are written raw so CookieIdentity reads back the exact
	// value. The profile is JSON and goes through gin's escaping.
	h.setRawCookie(c, h.keys.Token, session.Token, maxAge)
	h.setRawCookie(c, h.keys.Role, string(session.Role), maxAge)
	if user != nil {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(h.keys.User, string(user), maxAge, "/", "", h.secure, true)
	}
}

func (h *AuthHandler) clearSession(c *gin.Context) {
	for _, name := range []string{h.keys.Token, h.keys.Role, h.keys.User} {
		h.setRawCookie(c, name, "", -1)
	}
}

func (h *AuthHandler) setRawCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   maxAge,
		Path:     "/",
		Secure:   h.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) renderLogin(c *gin.Context, status int, message string, req *domain.LoginRequest) {
	c.HTML(status, "login", pageData(h.theme, "CogniWork — Sign in", gin.H{
		"Error": message,
		"Role":  req.Role,
		"Email": req.Email,
	}))
}

// loginFailure maps a login error to a status and the message shown to the user.
func loginFailure(err error, role string) (int, string) {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid Admin Credentials"
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			if fe.Field() == "Role" {
				return http.StatusBadRequest, "Select a role"
			}
		}
		if role == string(domain.Admin) {
			return http.StatusBadRequest, "Invalid Admin Credentials"
		}
		return http.StatusBadRequest, "Enter valid employee credentials"
	default:
		return http.StatusInternalServerError, "Login failed"
	}
}
