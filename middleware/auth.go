package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/ZORO77a/Lockey/logging"
	"github.com/ZORO77a/Lockey/model"
	"github.com/ZORO77a/Lockey/util"
)

// LockeyClaims is the bearer token payload. Tokens are issued elsewhere;
// this service only verifies them.
type LockeyClaims struct {
	jwt.StandardClaims
	Role string `json:"role"`
}

// Authenticate verifies an HS256 bearer token and stores the caller's
// model.Identity in the gin context.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			logger.Warn("No bearer token provided", zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := parseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			logger.Warn("Rejected bearer token", zap.Error(err), zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(util.IdentityKey, model.Identity{SubjectID: claims.Subject, Role: claims.Role})
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated caller has role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := util.GetIdentityFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		if identity.Role != role {
			logger.Warn("Caller lacks the required role",
				zap.String("subjectID", identity.SubjectID),
				zap.String("role", identity.Role),
				zap.String("required", role))
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func parseToken(tokenString, secret string) (*LockeyClaims, error) {
	if secret == "" {
		return nil, fmt.Errorf("auth.jwtSecret is not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &LockeyClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*LockeyClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token or wrong claims type")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	if claims.Role != model.RoleAdmin && claims.Role != model.RoleEmployee {
		return nil, fmt.Errorf("token has unknown role %q", claims.Role)
	}
	return claims, nil
}
