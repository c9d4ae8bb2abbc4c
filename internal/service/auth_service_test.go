package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"edusync/backend/config"
	"edusync/backend/internal/dto"
	"edusync/backend/internal/model"
	"edusync/backend/pkg/identitystore"
	"edusync/backend/pkg/jwt"
)

func newAuthStack(t *testing.T, path string) AuthService {
	t.Helper()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-0123456789",
			AccessTokenTTL: time.Hour,
		},
	}
	logger := zap.NewNop()
	idStore := identitystore.NewFileStore(path, logger)
	return NewAuthService(cfg, idStore, jwt.NewManager(&cfg.Auth), nil, logger)
}

func TestAuth_LoginRejectsInvalidRole(t *testing.T) {
	ctx := context.Background()
	svc := newAuthStack(t, filepath.Join(t.TempDir(), "user.json"))

	_, err := svc.Login(ctx, &dto.LoginRequest{
		Email: "a@b.edu", Role: "ADMIN", Name: "Eve",
	})
	if err != ErrAuthInvalidRole {
		t.Errorf("非法角色期望 ErrAuthInvalidRole, 实际 %v", err)
	}
}

func TestAuth_LoginOverwritesCurrent(t *testing.T) {
	ctx := context.Background()
	svc := newAuthStack(t, filepath.Join(t.TempDir(), "user.json"))

	if _, err := svc.Login(ctx, &dto.LoginRequest{
		Email: "a@b.edu", Role: "STUDENT", Name: "Alice", Identifier: "S-1",
	}); err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginRequest{
		Email: "t@b.edu", Role: "TEACHER", Name: "Ms. Wu",
	}); err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	current := svc.Current(ctx)
	if current == nil {
		t.Fatal("登录后应存在当前身份")
	}
	if current.Name != "Ms. Wu" || current.Role != model.RoleTeacher {
		t.Errorf("后登录者应覆盖前者, 实际 %+v", current)
	}
}

func TestAuth_IdentitySurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "user.json")

	svc := newAuthStack(t, path)
	resp, err := svc.Login(ctx, &dto.LoginRequest{
		Email: "a@b.edu", Role: "STUDENT", Name: "Alice", Identifier: "S-1",
	})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("登录应签发 AccessToken")
	}

	// 新建服务实例模拟进程重启，只靠持久化文件恢复
	restarted := newAuthStack(t, path)
	restarted.LoadPersisted(ctx)

	current := restarted.Current(ctx)
	if current == nil {
		t.Fatal("重启后应恢复持久化身份")
	}
	if current.Name != "Alice" || current.Role != model.RoleStudent || current.Identifier != "S-1" {
		t.Errorf("恢复的身份字段不完整, 实际 %+v", current)
	}
}

func TestAuth_LogoutClearsPersistedIdentity(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "user.json")

	svc := newAuthStack(t, path)
	if _, err := svc.Login(ctx, &dto.LoginRequest{
		Email: "a@b.edu", Role: "STUDENT", Name: "Alice",
	}); err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	svc.Logout(ctx, nil)
	if svc.Current(ctx) != nil {
		t.Error("登出后当前身份应为空")
	}

	restarted := newAuthStack(t, path)
	restarted.LoadPersisted(ctx)
	if restarted.Current(ctx) != nil {
		t.Error("登出后持久化记录应已删除，重启不应恢复任何身份")
	}
}
