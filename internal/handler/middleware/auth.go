package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"stelwing-booking/internal/handler/httperr"
	"stelwing-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxMemberIDKey = "member_id"

var errMissingToken = errors.New("missing bearer token")

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithCode(c, http.StatusUnauthorized, "unauthenticated", errMissingToken, "Access token required", nil)
			return
		}

		memberID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			rejectToken(c, err)
			return
		}

		setMember(c, memberID)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present. Guest
// bookings go through without one; a bad token is still rejected.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		memberID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			rejectToken(c, err)
			return
		}

		setMember(c, memberID)
		c.Next()
	}
}

func GetMemberID(c *gin.Context) (uuid.UUID, bool) {
	memberID, exists := c.Get(ctxMemberIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := memberID.(uuid.UUID)
	return id, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func setMember(c *gin.Context, memberID uuid.UUID) {
	c.Set(ctxMemberIDKey, memberID)
}

func rejectToken(c *gin.Context, err error) {
	slog.Warn("member token rejected", "request_id", GetRequestID(c), "error", err.Error())
	httperr.AbortWithCode(c, http.StatusUnauthorized, "unauthenticated", err, "Invalid or expired token", nil)
}
