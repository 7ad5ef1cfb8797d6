package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kavienanj/single-vendor-ecommerce/models"
)

// Context keys set by the auth middleware.
const (
	ContextUserID = "user_id"
	ContextRoleID = "role_id"
)

var errNoToken = errors.New("authorization header is missing")

func parseToken(c *gin.Context) (jwt.MapClaims, error) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		return nil, errNoToken
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

func setIdentity(c *gin.Context, claims jwt.MapClaims) bool {
	// JSON numbers decode as float64.
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return false
	}
	roleID, ok := claims["role_id"].(float64)
	if !ok {
		return false
	}
	c.Set(ContextUserID, uint(userID))
	c.Set(ContextRoleID, int(roleID))
	return true
}

// RequireAuth rejects the request unless a valid bearer token is present.
func RequireAuth(c *gin.Context) {
	claims, err := parseToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		c.Abort()
		return
	}
	if !setIdentity(c, claims) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token claims"})
		c.Abort()
		return
	}
	c.Next()
}

// OptionalAuth attaches the caller's identity when a valid token is present
// and lets anonymous requests through. A token that is present but invalid
// is still rejected.
func OptionalAuth(c *gin.Context) {
	claims, err := parseToken(c)
	if errors.Is(err, errNoToken) {
		c.Next()
		return
	}
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		c.Abort()
		return
	}
	setIdentity(c, claims)
	c.Next()
}

// RequireAdmin rejects the request unless the token carries the admin role.
func RequireAdmin(c *gin.Context) {
	claims, err := parseToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		c.Abort()
		return
	}
	if !setIdentity(c, claims) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token claims"})
		c.Abort()
		return
	}
	if c.GetInt(ContextRoleID) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "admin role required"})
		c.Abort()
		return
	}
	c.Next()
}

// CurrentUserID returns the authenticated user's id from the request context.
func CurrentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}

// IsAdmin reports whether the request context carries the admin role.
func IsAdmin(c *gin.Context) bool {
	return c.GetInt(ContextRoleID) == models.RoleAdmin
}
