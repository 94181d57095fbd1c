package echo

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	domain "github.com/mafiaidola/leads-manager-sub001/internal/domain/lead"
)

const actorContextKey = "import.actor"

// ActorResolver turns a bearer token into an authenticated actor.
type ActorResolver interface {
	ResolveToken(ctx context.Context, token string) (domain.Actor, error)
}

// RequireAdmin gates a route group behind an admin-role bearer token.
// The check runs before any request body is read: a missing or unknown
// token yields 401, a non-admin actor 403.
func RequireAdmin(resolver ActorResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return c.JSON(http.StatusUnauthorized, commitFailure{Message: "Unauthorized"})
			}

			actor, err := resolver.ResolveToken(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, commitFailure{Message: "Unauthorized"})
			}
			if actor.Role != domain.RoleAdmin {
				return c.JSON(http.StatusForbidden, commitFailure{Message: "Admin role required"})
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// ActorFromContext returns the actor stored by RequireAdmin.
func ActorFromContext(c echo.Context) domain.Actor {
	actor, _ := c.Get(actorContextKey).(domain.Actor)
	return actor
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
