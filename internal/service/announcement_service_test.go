package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"edusync/backend/internal/dto"
)

// stubGenerator 可编程的文本生成假实现
type stubGenerator struct {
	text    string
	err     error
	prompts []string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.text, g.err
}

func TestAnnouncement_NilGeneratorReturnsKeyMissingPlaceholder(t *testing.T) {
	svc := NewAnnouncementService(nil, zap.NewNop())

	resp := svc.Generate(context.Background(), &dto.GenerateAnnouncementRequest{Context: "exam"})
	if resp.Message != msgAPIKeyMissing {
		t.Errorf("密钥缺失期望占位文案 %q, 实际 %q", msgAPIKeyMissing, resp.Message)
	}
}

func TestAnnouncement_GenerateErrorReturnsFailPlaceholder(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	svc := NewAnnouncementService(gen, zap.NewNop())

	resp := svc.Generate(context.Background(), &dto.GenerateAnnouncementRequest{Context: "exam"})
	if resp.Message != msgGenerateFail {
		t.Errorf("远端失败期望占位文案 %q, 实际 %q", msgGenerateFail, resp.Message)
	}
}

func TestAnnouncement_EmptyResultReturnsEmptyPlaceholder(t *testing.T) {
	gen := &stubGenerator{text: "   \n  "}
	svc := NewAnnouncementService(gen, zap.NewNop())

	resp := svc.Generate(context.Background(), &dto.GenerateAnnouncementRequest{Context: "exam"})
	if resp.Message != msgGenerateEmpty {
		t.Errorf("空结果期望占位文案 %q, 实际 %q", msgGenerateEmpty, resp.Message)
	}
}

func TestAnnouncement_SuccessTrimsAndReturnsText(t *testing.T) {
	gen := &stubGenerator{text: "  Exam moved to Friday.  \n"}
	svc := NewAnnouncementService(gen, zap.NewNop())

	resp := svc.Generate(context.Background(), &dto.GenerateAnnouncementRequest{
		Context: "exam moved", Tone: "formal",
	})
	if resp.Message != "Exam moved to Friday." {
		t.Errorf("成功结果应去除首尾空白, 实际 %q", resp.Message)
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("应恰好调用一次生成器, 实际 %d 次", len(gen.prompts))
	}
	if !strings.Contains(gen.prompts[0], "exam moved") || !strings.Contains(gen.prompts[0], "formal") {
		t.Errorf("提示词应包含上下文与语气, 实际 %q", gen.prompts[0])
	}
}

func TestAnnouncement_ToneDefaultsToFriendly(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	svc := NewAnnouncementService(gen, zap.NewNop())

	svc.Generate(context.Background(), &dto.GenerateAnnouncementRequest{Context: "exam"})
	if !strings.Contains(gen.prompts[0], "friendly") {
		t.Errorf("语气缺省应为 friendly, 实际提示词 %q", gen.prompts[0])
	}
}
