package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/apperror"
	"github.com/oksasatya/go-ddd-wallet/pkg/helpers"
	"github.com/oksasatya/go-ddd-wallet/pkg/response"
)

// CtxUserIDKey holds the uid claim of a verified access token. It is left
// unset when the token carries no uid; handlers answer that with 400.
const CtxUserIDKey = "userID"

// JWTAuth reads a Bearer token from the Authorization header and validates it.
func JWTAuth(jwt *helpers.JWTManager, logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Missing access token", gin.H{"code": apperror.CodeUnauthorized})
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Debug("access token rejected")
			response.Error(c, http.StatusUnauthorized, "Invalid access token", gin.H{"code": apperror.CodeUnauthorized})
			return
		}
		if claims.UserID != "" {
			c.Set(CtxUserIDKey, claims.UserID)
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
