package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sm8ta/cogniwork_web/internal/core/domain"
)

// IdentityKeys names the client storage slots holding the identity claims.
type IdentityKeys struct {
	Token string
	Role  string
	User  string
}

func DefaultIdentityKeys() IdentityKeys {
	return IdentityKeys{Token: "token", Role: "role", User: "user"}
}

// CookieIdentity reads identity claims from request cookies. Values are
// returned exactly as sent, without unescaping. Empty values are absent.
type CookieIdentity struct {
	c    *gin.Context
	keys IdentityKeys
}

func NewCookieIdentity(c *gin.Context, keys IdentityKeys) CookieIdentity {
	return CookieIdentity{c: c, keys: keys}
}

func (i CookieIdentity) Token() (string, bool) {
	return i.read(i.keys.Token)
}

func (i CookieIdentity) Role() (string, bool) {
	return i.read(i.keys.Role)
}

func (i CookieIdentity) read(name string) (string, bool) {
	cookie, err := i.c.Request.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// StaticIdentity is a fixed set of claims.
type StaticIdentity struct {
	TokenValue string
	RoleValue  string
}

func (s StaticIdentity) Token() (string, bool) {
	return s.TokenValue, s.TokenValue != ""
}

func (s StaticIdentity) Role() (string, bool) {
	return s.RoleValue, s.RoleValue != ""
}

const identityClaimsKey = "identity_claims"

func getIdentityClaims(c *gin.Context) (domain.Claims, bool) {
	v, exists := c.Get(identityClaimsKey)
	if !exists {
		return domain.Claims{}, false
	}
	claims, ok := v.(domain.Claims)
	return claims, ok
}
