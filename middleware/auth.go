package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/utils"
)

const claimsKey = "user"

// TokenVerifier decodes an access token.
type TokenVerifier interface {
	Verify(token string) (*utils.Claims, error)
}

// VerifyToken requires a valid access token and stores its claims on the context.
func VerifyToken(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			utils.JSONError(c, utils.Unauthorized("a token is required for authentication. login and try again."))
			return
		}
		claims, err := v.Verify(token)
		if err != nil {
			utils.JSONError(c, utils.Unauthenticated("expired or invalid credential. login again and try again."))
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects callers whose role is not listed. It must run after VerifyToken.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentUser(c)
		for _, r := range roles {
			if claims != nil && claims.Role == r {
				c.Next()
				return
			}
		}
		utils.JSONError(c, utils.Forbidden("your role is not allowed to perform this action."))
	}
}

// CurrentUser returns the claims set by VerifyToken, or nil.
func CurrentUser(c *gin.Context) *utils.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*utils.Claims)
	return claims
}

// extractToken looks in the body "token" field, the query string, x-access-token and
// the Authorization bearer header, in that order.
func extractToken(c *gin.Context) string {
	if t := tokenFromBody(c); t != "" {
		return t
	}
	if t := c.Query("token"); t != "" {
		return t
	}
	if t := c.GetHeader("x-access-token"); t != "" {
		return t
	}
	auth := c.GetHeader("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

func tokenFromBody(c *gin.Context) string {
	if c.Request.Body == nil || !strings.HasPrefix(c.ContentType(), "application/json") {
		return ""
	}
	raw, err := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body struct {
		Token string `json:"token"`
	}
	if json.Unmarshal(raw, &body) != nil {
		return ""
	}
	return body.Token
}
