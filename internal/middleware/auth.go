package middleware

import (
	"net/http"
	"strings"

	"sitecraft_backend/internal/auth"
	"sitecraft_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - проверка bearer-токена на защищенных маршрутах.
// Отсутствующий, битый и просроченный токены дают один и тот же 401,
// причина остается только в логах.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "rejected bearer token", "path", c.Request.URL.Path)
			abortUnauthorized(c)
			return
		}

		// В контекст кладем только ID: админ-флаг перечитывается из БД
		// на каждой операции, устаревший claim прав не дает.
		c.Set("userID", claims.UserID)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   "Authentication required",
	})
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
