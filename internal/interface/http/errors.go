package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/apperror"
	"github.com/oksasatya/go-ddd-wallet/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-wallet/pkg/response"
	"github.com/oksasatya/go-ddd-wallet/pkg/validation"
)

const internalErrorMessage = "Internal server error"

func statusFor(k apperror.Kind) int {
	switch k {
	case apperror.KindValidation, apperror.KindConflict, apperror.KindInsufficientFunds:
		return http.StatusBadRequest
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized
	case apperror.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status by its apperror kind. Unclassified errors are
// logged and answered with a generic 500 so internals never reach the client.
func writeError(c *gin.Context, logger logrus.FieldLogger, err error) {
	ae, ok := apperror.As(err)
	if !ok || ae.Kind == apperror.KindInternal {
		logger.WithError(err).WithFields(logrus.Fields{
			"path":       c.FullPath(),
			"method":     c.Request.Method,
			"request_id": c.GetString(response.RequestIDKey),
		}).Error("request failed")
		response.Error(c, http.StatusInternalServerError, internalErrorMessage, gin.H{"code": apperror.CodeInternal})
		return
	}
	response.Error(c, statusFor(ae.Kind), ae.Message, gin.H{"code": ae.Code})
}

func writeBindError(c *gin.Context, err error) {
	response.Error(c, http.StatusBadRequest, "Invalid request payload", gin.H{
		"code":    apperror.CodeInvalidPayload,
		"details": validation.ToDetails(err),
	})
}

// currentUserID reads the identity set by JWTAuth. A verified token without a
// uid claim is a malformed payload, answered with 400.
func currentUserID(c *gin.Context) (string, bool) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if uid == "" {
		response.Error(c, http.StatusBadRequest, "Invalid token payload", gin.H{"code": apperror.CodeInvalidTokenPayload})
		return "", false
	}
	return uid, true
}
