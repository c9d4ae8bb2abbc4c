package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"edusync/backend/internal/dto"
	"edusync/backend/internal/model"
	"edusync/backend/internal/service"
	"edusync/backend/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult   *dto.LoginResponse
	loginErr      error
	currentResult *model.User
	logoutCalled  bool
}

func (m *mockAuthService) LoadPersisted(_ context.Context) {}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Logout(_ context.Context, _ *jwt.Claims) {
	m.logoutCalled = true
}
func (m *mockAuthService) Current(_ context.Context) *model.User {
	return m.currentResult
}

// ── Mock TimetableService ──

type mockTimetableService struct {
	listResult   []model.ClassSession
	addResult    *model.ClassSession
	addErr       error
	updateResult *model.ClassSession
	updateErr    error
	importResult *dto.ImportICSResponse
	importErr    error
	deletedIDs   []string
}

func (m *mockTimetableService) List(_ context.Context) []model.ClassSession {
	return m.listResult
}
func (m *mockTimetableService) Add(_ context.Context, _ *dto.CreateClassSessionRequest) (*model.ClassSession, error) {
	return m.addResult, m.addErr
}
func (m *mockTimetableService) Update(_ context.Context, _ string, _ *dto.UpdateClassSessionRequest, _ string) (*model.ClassSession, error) {
	return m.updateResult, m.updateErr
}
func (m *mockTimetableService) Delete(_ context.Context, id string) {
	m.deletedIDs = append(m.deletedIDs, id)
}
func (m *mockTimetableService) ImportICS(_ context.Context, _ io.Reader, _ string) (*dto.ImportICSResponse, error) {
	return m.importResult, m.importErr
}

// ── Mock NotificationService ──

type mockNotificationService struct {
	listResult *dto.NotificationListResponse
	readIDs    []string
}

func (m *mockNotificationService) List(_ context.Context) *dto.NotificationListResponse {
	return m.listResult
}
func (m *mockNotificationService) Add(_ context.Context, _ service.NotificationDraft) model.NotificationItem {
	return model.NotificationItem{}
}
func (m *mockNotificationService) Broadcast(_ context.Context, req *dto.BroadcastRequest, senderName string) model.NotificationItem {
	return model.NotificationItem{Title: req.Title, SenderName: senderName}
}
func (m *mockNotificationService) MarkAsRead(_ context.Context, id string) {
	m.readIDs = append(m.readIDs, id)
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

// withIdentity 模拟 JWT 中间件注入的身份字段
func withIdentity(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "u-1")
		c.Set("user_name", name)
		c.Next()
	}
}

func performJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("响应不是合法 JSON: %v, body=%s", err, w.Body.String())
	}
	return env
}

// ═══════════════════════════════════════════════════════════
// Auth Handler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.LoginResponse{
			AccessToken: "tok",
			ExpiresIn:   3600,
			User:        model.User{ID: "u-1", Name: "Alice", Role: model.RoleStudent},
		},
	}
	h := NewAuthHandler(mock)

	r := gin.New()
	r.POST("/login", h.Login)

	w := performJSON(r, http.MethodPost, "/login", dto.LoginRequest{
		Email: "a@b.edu", Role: "STUDENT", Identifier: "S-1", Name: "Alice",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("状态码期望 200, 实际 %d, body=%s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Code != 0 {
		t.Errorf("业务码期望 0, 实际 %d", env.Code)
	}

	var resp dto.LoginResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("解析 data 失败: %v", err)
	}
	if resp.AccessToken != "tok" || resp.User.Name != "Alice" {
		t.Errorf("登录响应不匹配: %+v", resp)
	}
}

func TestAuthHandler_LoginBindingRejectsBadRole(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	r := gin.New()
	r.POST("/login", h.Login)

	w := performJSON(r, http.MethodPost, "/login", dto.LoginRequest{
		Email: "a@b.edu", Role: "ADMIN", Identifier: "S-1", Name: "Eve",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("状态码期望 400, 实际 %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Code != 10001 {
		t.Errorf("业务码期望 10001, 实际 %d", env.Code)
	}
}

func TestAuthHandler_MeWithoutIdentity(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{currentResult: nil})

	r := gin.New()
	r.GET("/me", h.Me)

	w := performJSON(r, http.MethodGet, "/me", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("状态码期望 200, 实际 %d", w.Code)
	}
	env := decodeEnvelope(t, w)

	var resp dto.MeResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("解析 data 失败: %v", err)
	}
	if resp.User != nil {
		t.Errorf("未登录时 user 应为 null, 实际 %+v", resp.User)
	}
}

// ═══════════════════════════════════════════════════════════
// Timetable Handler Tests
// ═══════════════════════════════════════════════════════════

func validUpdateBody() dto.UpdateClassSessionRequest {
	return dto.UpdateClassSessionRequest{
		Subject: "CS", TeacherName: "Mr. Anderson", Room: "Lab 301",
		DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00",
	}
}

func TestTimetableHandler_UpdateUnknownIDReturnsNullData(t *testing.T) {
	// Service 对未知 id 返回 (nil, nil)，HTTP 层应保持 200 + data null
	h := NewTimetableHandler(&mockTimetableService{updateResult: nil})

	r := gin.New()
	r.PUT("/timetable/:id", withIdentity("Ms. Wu"), h.Update)

	w := performJSON(r, http.MethodPut, "/timetable/ghost", validUpdateBody())
	if w.Code != http.StatusOK {
		t.Fatalf("状态码期望 200, 实际 %d, body=%s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Code != 0 {
		t.Errorf("业务码期望 0, 实际 %d", env.Code)
	}
	if string(env.Data) != "null" {
		t.Errorf("data 期望 null, 实际 %s", env.Data)
	}
}

func TestTimetableHandler_UpdateWithoutIdentity(t *testing.T) {
	h := NewTimetableHandler(&mockTimetableService{})

	r := gin.New()
	r.PUT("/timetable/:id", h.Update) // 不注入身份

	w := performJSON(r, http.MethodPut, "/timetable/1", validUpdateBody())
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("状态码期望 401, 实际 %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Code != 10002 {
		t.Errorf("业务码期望 10002, 实际 %d", env.Code)
	}
}

func TestTimetableHandler_CreateValidationError(t *testing.T) {
	h := NewTimetableHandler(&mockTimetableService{addErr: service.ErrTimetableInvalidDay})

	r := gin.New()
	r.POST("/timetable", h.Create)

	body := dto.CreateClassSessionRequest{
		Subject: "CS", TeacherName: "X", Room: "R",
		DayOfWeek: "Funday", StartTime: "09:00", EndTime: "10:00",
	}
	w := performJSON(r, http.MethodPost, "/timetable", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("状态码期望 400, 实际 %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Code != 12002 {
		t.Errorf("业务码期望 12002, 实际 %d", env.Code)
	}
}

func TestTimetableHandler_Delete(t *testing.T) {
	mock := &mockTimetableService{}
	h := NewTimetableHandler(mock)

	r := gin.New()
	r.DELETE("/timetable/:id", h.Delete)

	w := performJSON(r, http.MethodDelete, "/timetable/42", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("状态码期望 200, 实际 %d", w.Code)
	}
	if len(mock.deletedIDs) != 1 || mock.deletedIDs[0] != "42" {
		t.Errorf("删除调用不匹配: %v", mock.deletedIDs)
	}
}

// ═══════════════════════════════════════════════════════════
// Notification Handler Tests
// ═══════════════════════════════════════════════════════════

func TestNotificationHandler_MarkAsRead(t *testing.T) {
	mock := &mockNotificationService{}
	h := NewNotificationHandler(mock)

	r := gin.New()
	r.PUT("/notifications/:id/read", h.MarkAsRead)

	w := performJSON(r, http.MethodPut, "/notifications/n1/read", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("状态码期望 200, 实际 %d", w.Code)
	}
	if len(mock.readIDs) != 1 || mock.readIDs[0] != "n1" {
		t.Errorf("置已读调用不匹配: %v", mock.readIDs)
	}
}

func TestNotificationHandler_BroadcastRequiresIdentity(t *testing.T) {
	h := NewNotificationHandler(&mockNotificationService{})

	r := gin.New()
	r.POST("/notifications", h.Broadcast)

	w := performJSON(r, http.MethodPost, "/notifications", dto.BroadcastRequest{
		Title: "t", Message: "m",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("状态码期望 401, 实际 %d", w.Code)
	}
}
