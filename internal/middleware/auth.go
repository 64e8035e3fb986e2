package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lciportal_backend/internal/auth"
	"lciportal_backend/internal/logger"
	"lciportal_backend/pkg/apperrors"
	"lciportal_backend/pkg/contextkeys"
)

// PrincipalKey is the gin context key the resolved caller is stored under.
const PrincipalKey = "principal"

// AuthMiddleware resolves the Authorization header into a Principal.
// Both token families are accepted: the static admin bundle and a user
// JWT. Requests without a valid principal never reach the handler.
func AuthMiddleware(resolver *auth.PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abortWithError(c, apperrors.ErrTokenMissing)
			return
		}

		db, ok := c.Get(string(contextkeys.DBContextKey))
		if !ok {
			abortWithError(c, apperrors.NewInternalError("database not available"))
			return
		}

		principal, appErr := resolver.Resolve(db.(*gorm.DB), token)
		if appErr != nil {
			abortWithError(c, appErr)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), principal.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// AdminMiddleware rejects any principal that is not an admin. It must run
// after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal == nil || !principal.IsAdmin() {
			abortWithError(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// GetPrincipal extracts the resolved caller from the gin context, or nil
// when the request never passed AuthMiddleware.
func GetPrincipal(c *gin.Context) *auth.Principal {
	val, exists := c.Get(PrincipalKey)
	if !exists {
		return nil
	}
	principal, ok := val.(*auth.Principal)
	if !ok {
		return nil
	}
	return principal
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", false
	}
	return token, true
}

func abortWithError(c *gin.Context, err *apperrors.AppError) {
	c.Abort()
	apperrors.HandleError(c, err)
}
