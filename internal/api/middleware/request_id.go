package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"workorder.io/engine/internal/statemachine"
)

type contextKey string

const (
	// RequestIDHeader is the HTTP header for request tracing.
	RequestIDHeader = "X-Request-ID"

	// ActorTypeHeader and ActorIDHeader carry the caller's audit
	// identity. Authorization is out of scope.
	ActorTypeHeader = "X-Actor-Type"
	ActorIDHeader   = "X-Actor-ID"

	ctxKeyRequestID contextKey = "request_id"
)

// RequestID injects a unique request ID into the context and response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			id, _ := uuid.NewV7()
			rid = id.String()
		}
		c.Set(string(ctxKeyRequestID), rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), ctxKeyRequestID, rid),
		)
		c.Next()
	}
}

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// ActorFromRequest reads the caller-supplied audit identity off
// X-Actor-Type/X-Actor-ID, defaulting to an anonymous user actor when
// absent. Never used for authorization.
func ActorFromRequest(c *gin.Context) statemachine.Actor {
	actorType := c.GetHeader(ActorTypeHeader)
	switch actorType {
	case "agent", "system":
	default:
		actorType = "user"
	}
	actorID := c.GetHeader(ActorIDHeader)
	if actorID == "" {
		actorID = "anonymous"
	}
	return statemachine.Actor{Type: actorType, ID: actorID}
}
