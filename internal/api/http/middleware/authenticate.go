package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vitalog/vitalog-server/internal/logger"
)

// userIDKey is the gin context key holding the resolved user ID.
const userIDKey = "user_id"

// TokenParser resolves user IDs from bearer tokens.
type TokenParser interface {
	ParseAccessToken(tokenString string) (uuid.UUID, error)
}

// Authenticate validates the Authorization bearer token and injects the
// resolved user ID into the request context. Downstream handlers only ever
// see the resolved ID.
func Authenticate(tokens TokenParser, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if header == "" || tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			return
		}

		userID, err := tokens.ParseAccessToken(tokenString)
		if err != nil || userID == uuid.Nil {
			logger.Debug("Authenticate middleware: token rejected", "error", errString(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID retrieves the authenticated user ID set by Authenticate.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	return userID, ok
}

func errString(err error) string {
	if err == nil {
		return "nil user id"
	}
	return err.Error()
}
