package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vportnov/user-service/internal/logger"
	"github.com/vportnov/user-service/internal/model"
)

// TokenParser resolves user IDs from bearer tokens.
type TokenParser interface {
	ParseAccessToken(token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects the caller identity
// into the request context.
type Authenticate struct {
	tokens     TokenParser
	ctxManager model.ContextManager
	logger     *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenParser, ctxManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, ctxManager: ctxManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and stores
// the user ID on the request context.
func (m *Authenticate) Handle(c *gin.Context) {
	header := c.GetHeader("Authorization")
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	userID, err := m.tokens.ParseAccessToken(tokenString)
	if err != nil || userID == uuid.Nil {
		m.logger.Debug("Authenticate middleware: token rejected", "path", c.FullPath())
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization token"})
		return
	}

	c.Request = c.Request.WithContext(m.ctxManager.SetUserIDToContext(c.Request.Context(), userID))
	c.Next()
}
