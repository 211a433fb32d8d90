package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/orris-inc/photobooth/internal/infrastructure/auth"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
	"github.com/orris-inc/photobooth/internal/shared/utils"
)

const adminClaimsKey = "admin_claims"

// TokenVerifier validates admin bearer tokens.
type TokenVerifier interface {
	Verify(tokenString string) (*auth.AdminClaims, error)
}

type AdminAuthMiddleware struct {
	verifier TokenVerifier
	enabled  bool
	logger   logger.Interface
}

// NewAdminAuthMiddleware guards admin routes. When enabled is false every
// request passes, which matches deployments on a trusted local network.
func NewAdminAuthMiddleware(verifier TokenVerifier, enabled bool, logger logger.Interface) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		verifier: verifier,
		enabled:  enabled,
		logger:   logger,
	}
}

func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.AbortWithError(c, errors.NewUnauthorizedError("missing authorization token"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.AbortWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
			return
		}

		claims, err := m.verifier.Verify(parts[1])
		if err != nil {
			var authErr *errors.AuthError
			if stderrors.Is(err, jwt.ErrTokenExpired) {
				authErr = errors.NewTokenExpiredError("admin token")
			} else {
				authErr = errors.NewTokenInvalidError("admin token")
			}
			if errors.ShouldLogAuthError(authErr) {
				m.logger.Warnw("failed to verify admin token", "client_ip", c.ClientIP(), "error", err)
			}
			utils.AbortWithError(c, authErr)
			return
		}

		c.Set(adminClaimsKey, claims)
		c.Next()
	}
}
