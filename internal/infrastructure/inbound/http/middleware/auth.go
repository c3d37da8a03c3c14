package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
	"pinstack-publish-service/internal/infrastructure/inbound/http/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorKey = "actor"

// Claims is the access token issued by the auth service.
type Claims struct {
	WorkspaceID int64  `json:"workspace_id"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// Auth verifies a bearer HS256 token and stores the caller as the actor.
func Auth(secret, issuer string, log ports.Logger) gin.HandlerFunc {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			response.Fail(c, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims := &Claims{}
		_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil {
			log.Debug("Rejected access token", slog.String("error", err.Error()))
			response.Fail(c, http.StatusUnauthorized, "invalid token")
			return
		}

		actor, err := actorFromClaims(claims)
		if err != nil {
			log.Debug("Rejected token claims", slog.String("error", err.Error()))
			response.Fail(c, http.StatusUnauthorized, "invalid token claims")
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

func actorFromClaims(claims *Claims) (model.Actor, error) {
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return model.Actor{}, fmt.Errorf("subject %q is not a user id", claims.Subject)
	}
	if claims.WorkspaceID <= 0 {
		return model.Actor{}, errors.New("workspace_id is required")
	}
	return model.Actor{UserID: userID, WorkspaceID: claims.WorkspaceID, Role: model.Role(claims.Role)}, nil
}

// ActorFrom returns the authenticated caller set by Auth.
func ActorFrom(c *gin.Context) model.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(model.Actor); ok {
			return actor
		}
	}
	return model.Actor{}
}

// WithActor is used by tests and internal routes that authenticate elsewhere.
func WithActor(actor model.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, actor)
		c.Next()
	}
}

// RequireRole admits only actors holding one of roles.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		response.Fail(c, http.StatusForbidden, "forbidden")
	}
}
