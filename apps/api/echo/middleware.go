package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// jwtMiddleware rejects requests without a valid token.
func (s *Server) jwtMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		raw := extractToken(ctx)
		if raw == "" {
			return errJWTMissing
		}
		claims, err := parseToken(s.deps.Conf, raw)
		if err != nil {
			return errJWTMissing
		}
		ctx.Set(contextTokenKey, claims)
		return next(ctx)
	}
}

// optionalJWTMiddleware sets claims when a valid token is present and treats
// everything else as anonymous.
func (s *Server) optionalJWTMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if raw := extractToken(ctx); raw != "" {
			if claims, err := parseToken(s.deps.Conf, raw); err == nil {
				ctx.Set(contextTokenKey, claims)
			}
		}
		return next(ctx)
	}
}

func adminMiddleware() echo.MiddlewareFunc {
	return roleMiddleware(func(claims Claims) bool { return claims.IsAdmin })
}

func teacherMiddleware() echo.MiddlewareFunc {
	return roleMiddleware(func(claims Claims) bool { return claims.IsTeacher })
}

func parentMiddleware() echo.MiddlewareFunc {
	return roleMiddleware(func(claims Claims) bool { return claims.IsParent })
}

func roleMiddleware(allowed func(Claims) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if allowed(claims) {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}
