package service

import (
	"sync"

	"go.uber.org/zap"

	"edusync/backend/internal/repository"
)

// ── 测试辅助 ──

// fakeNotifier 记录投递调用的提醒通道假实现
type fakeNotifier struct {
	mu     sync.Mutex
	titles []string
}

func (f *fakeNotifier) Notify(title, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.titles = append(f.titles, title)
}

// newTestStack 构建真实内存仓库 + 通知/课表服务的测试组合
// 内存仓库本身就是生产实现，无需 mock
func newTestStack() (*repository.Repository, NotificationService, TimetableService) {
	repo := repository.NewRepository()
	logger := zap.NewNop()
	notifySvc := NewNotificationService(repo, &fakeNotifier{}, logger)
	timetableSvc := NewTimetableService(repo, notifySvc, logger)
	return repo, notifySvc, timetableSvc
}
