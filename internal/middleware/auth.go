package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/tdhoang/auditflow/internal/dto"
	"github.com/tdhoang/auditflow/internal/model"
)

// Context keys set by Authorize for downstream handlers.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// Authorize validates the bearer token and, when roles are given, requires the
// caller's role to be one of them. The token is self-contained: role checks
// never hit the database.
func Authorize(secret string, roles ...model.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ApiResponse{Success: false, Message: "Missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Warn().Err(err).Msg("Rejected invalid token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ApiResponse{Success: false, Message: "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ApiResponse{Success: false, Message: "Invalid token claims"})
			return
		}

		userID, _ := claims["userID"].(float64)
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)

		ctx.Set(ContextUserID, uint(userID))
		ctx.Set(ContextEmail, email)
		ctx.Set(ContextRole, role)

		if len(roles) > 0 {
			allowed := false
			for _, r := range roles {
				if model.Role(role) == r {
					allowed = true
					break
				}
			}
			if !allowed {
				log.Warn().Str("role", role).Str("path", ctx.FullPath()).Msg("Role not permitted for route")
				ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ApiResponse{Success: false, Message: "Insufficient role"})
				return
			}
		}

		ctx.Next()
	}
}
