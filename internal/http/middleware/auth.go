package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/compass-backend/internal/http/response"
	"github.com/yungbote/compass-backend/internal/pkg/apperr"
	"github.com/yungbote/compass-backend/internal/pkg/ctxutil"
	"github.com/yungbote/compass-backend/internal/pkg/logger"
	"github.com/yungbote/compass-backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLog, authService: authService}
}

// RequireAuth gates every profile operation. The token is self-contained, so
// verification needs no shared session state.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimSpace(c.GetHeader("Authorization"))
		if tokenString == "" {
			response.FromError(c, apperr.Auth("token missing"))
			c.Abort()
			return
		}
		ctx, err := am.authService.SetContextFromToken(c.Request.Context(), tokenString)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}
		c.Request = c.Request.WithContext(ctx)
		rd := ctxutil.GetRequestData(ctx)
		if rd == nil || rd.UserID == uuid.Nil {
			response.FromError(c, apperr.Auth("token invalid"))
			c.Abort()
			return
		}
		c.Next()
	}
}
