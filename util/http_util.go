// util/http_util.go
package util

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	lockey_errors "github.com/ZORO77a/Lockey/errors"
	logger "github.com/ZORO77a/Lockey/logging"
	"github.com/ZORO77a/Lockey/model"
)

// IdentityKey is the gin context key holding the verified model.Identity.
const IdentityKey = "identity"

func RespondWithError(c *gin.Context, code int, message string, err error) {
	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", code),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	}
	if code >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Warn(message, fields...)
	}
	c.JSON(code, gin.H{"error": message})
}

// RespondWithDomainError maps err onto a status code and client message.
// Validation errors carry the offending field; denials carry the reason.
func RespondWithDomainError(c *gin.Context, err error) {
	var verr *lockey_errors.ValidationError
	var denied *lockey_errors.PolicyDeniedError

	switch {
	case errors.As(err, &verr):
		logger.Warn("Validation failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	case errors.As(err, &denied):
		logger.Info("Access denied", zap.String("reason", denied.Reason), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied", "reason": denied.Reason})
	case errors.Is(err, lockey_errors.ErrInvalidFileData),
		errors.Is(err, lockey_errors.ErrInvalidBypassData),
		errors.Is(err, lockey_errors.ErrInvalidPolicyData),
		errors.Is(err, lockey_errors.ErrInvalidPagination):
		RespondWithError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, lockey_errors.ErrFileNotFound):
		RespondWithError(c, http.StatusNotFound, "File not found", err)
	case errors.Is(err, lockey_errors.ErrBypassRequestNotFound):
		RespondWithError(c, http.StatusNotFound, "Bypass request not found", err)
	case errors.Is(err, lockey_errors.ErrBypassRequestDecided):
		RespondWithError(c, http.StatusConflict, "Bypass request already decided", err)
	case errors.Is(err, lockey_errors.ErrUnauthorized):
		RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
	case errors.Is(err, lockey_errors.ErrForbidden):
		RespondWithError(c, http.StatusForbidden, "Forbidden", err)
	case errors.Is(err, lockey_errors.ErrDecryptionFailed):
		RespondWithError(c, http.StatusInternalServerError, "File could not be decrypted", err)
	case errors.Is(err, lockey_errors.ErrKeyUnavailable):
		RespondWithError(c, http.StatusInternalServerError, "Encryption key unavailable", err)
	case errors.Is(err, lockey_errors.ErrDatabaseOperation):
		RespondWithError(c, http.StatusInternalServerError, "Storage error", err)
	default:
		RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// GetIdentityFromContext returns the identity set by the auth middleware.
func GetIdentityFromContext(c *gin.Context) (model.Identity, error) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return model.Identity{}, lockey_errors.ErrUnauthorized
	}
	identity, ok := value.(model.Identity)
	if !ok || identity.SubjectID == "" {
		return model.Identity{}, lockey_errors.ErrUnauthorized
	}
	return identity, nil
}
