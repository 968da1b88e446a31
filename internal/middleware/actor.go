package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const actorKey = contextKey("actorID")

// ActorHeader names the header carrying the acting user's id. Authentication
// itself lives with the calling platform; the ledger only records who acted.
const ActorHeader = "X-Actor-ID"

// ActorMiddleware extracts the acting user id from the request header and
// rejects mutating requests without one, since every mutation is audited
// against a performer.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader(ActorHeader)
		if actor == "" && c.Request.Method != http.MethodGet {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ActorHeader + " header is required"})
			return
		}
		c.Set(string(actorKey), actor)
		c.Next()
	}
}

// GetActorFromContext retrieves the acting user id from the Gin context.
func GetActorFromContext(c *gin.Context) (string, bool) {
	actorVal, exists := c.Get(string(actorKey))
	if !exists {
		return "", false
	}
	actor, ok := actorVal.(string)
	if !ok || actor == "" {
		return "", false
	}
	return actor, true
}
