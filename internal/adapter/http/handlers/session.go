package handlers

import (
	"net/http"
	"strings"

	"ordem_servico/internal/domain/entities"
	"ordem_servico/pkg"

	"github.com/gin-gonic/gin"
)

const (
	sessionKey  = "session"
	TokenHeader = "X-Shop-Token"
	TokenQuery  = "token"
)

var errMissingToken = pkg.NewDomainErrorSimple("MISSING_TOKEN", "Shop token is required", http.StatusUnauthorized)

// RequireSession resolves the shop token from the query string or the
// X-Shop-Token header and stores the session on the context.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.Query(TokenQuery))
		if token == "" {
			token = strings.TrimSpace(c.GetHeader(TokenHeader))
		}
		if token == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		c.Set(sessionKey, entities.NewSession(token))
		c.Next()
	}
}

func sessionFrom(c *gin.Context) entities.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(entities.Session); ok {
			return s
		}
	}
	return entities.Session{}
}
