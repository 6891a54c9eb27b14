package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/okanoworks/orgtask-api/internal/constants"
	apierrors "github.com/okanoworks/orgtask-api/internal/errors"
	"github.com/okanoworks/orgtask-api/internal/models"
	"github.com/okanoworks/orgtask-api/internal/utils"
)

// Identity is the caller identity decoded from a verified token. It is
// trusted as-is for the token lifetime; no database lookup re-verifies it.
type Identity struct {
	UserID uint64
	Role   models.Role
	OrgID  uint64
}

// RequireAuth extracts and verifies the bearer token and attaches the
// caller identity to the request context.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := utils.ExtractBearerToken(c.GetHeader("Authorization"))
		if tokenStr == "" {
			apierrors.Unauthorized(c, "No token, authorization denied")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenStr, jwtSecret)
		if err != nil {
			apierrors.Unauthorized(c, "Token is not valid")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyIdentity, Identity{
			UserID: claims.UserID,
			Role:   claims.Role,
			OrgID:  claims.OrgID,
		})
		c.Next()
	}
}

// RequireAdmin restricts an endpoint to org admins. Composed after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, exists := GetIdentity(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if identity.Role != models.RoleOrgAdmin {
			apierrors.Forbidden(c, "Access denied: admins only")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetIdentity retrieves the caller identity from context
func GetIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return Identity{}, false
	}

	identity, ok := value.(Identity)
	if !ok {
		return Identity{}, false
	}

	return identity, true
}
