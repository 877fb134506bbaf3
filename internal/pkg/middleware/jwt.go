package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/lleva/internal/pkg/jwt"
	"github.com/piresc/lleva/internal/pkg/logger"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/internal/utils"
)

// RevocationChecker reports whether a token id was revoked by a logout
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// JWTAuthMiddleware authenticates requests with a bearer token. Websocket
// clients may pass the token in the "token" query parameter instead.
func JWTAuthMiddleware(config models.JWTConfig, revocations RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := extractToken(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(c.Request().Context(), claims.ID)
				if err != nil {
					logger.Error("Failed to check token revocation", logger.Err(err))
					return utils.InternalServerErrorResponse(c, "Failed to verify token")
				}
				if revoked {
					return utils.UnauthorizedResponse(c, "Token has been revoked")
				}
			}

			c.Set("user_id", claims.UserID.String())
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)
			c.Set("token_id", claims.ID)
			if claims.ExpiresAt != nil {
				c.Set("token_expires_at", claims.ExpiresAt.Time)
			}
			SetUserID(c, claims.UserID.String())

			return next(c)
		}
	}
}

func extractToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}

	if token := c.QueryParam("token"); token != "" {
		return token, true
	}
	return "", false
}
