package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/raindropoju/scripture-memory/internal/common/errors"
)

// ContextUserID is the gin context key carrying the authenticated user id.
const ContextUserID = "user_id"

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := userIDFromRequest(c, secret)
		if err != nil || userID == "" {
			appErr := errors.Unauthorized("missing or invalid authentication")
			c.JSON(appErr.Status, appErr)
			c.Abort()
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// OptionalAuth attaches the user id when a valid token is present and lets
// anonymous requests through untouched. Game sessions rely on this: guests
// play without identity, and the identity appearing or disappearing is what
// triggers session re-initialization.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := userIDFromRequest(c, secret); err == nil && userID != "" {
			c.Set(ContextUserID, userID)
		}
		c.Next()
	}
}

// UserID returns the authenticated user id from the context, empty for
// guests.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func userIDFromRequest(c *gin.Context, secret string) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", nil
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	return sub, nil
}
