package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"edusync/backend/config"
	"edusync/backend/internal/api/handler"
	"edusync/backend/internal/api/router"
	"edusync/backend/internal/repository"
	"edusync/backend/internal/service"
	"edusync/backend/pkg/alert"
	"edusync/backend/pkg/identitystore"
	"edusync/backend/pkg/jwt"
	applogger "edusync/backend/pkg/logger"
	"edusync/backend/pkg/redis"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 连接 Redis（可选：连接失败时降级运行，不中断启动）
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 连接失败，Token 黑名单功能将不可用", zap.Error(err))
		rdb = nil
	}

	// 4. 选择身份持久化后端
	var idStore identitystore.Store
	if cfg.Identity.Backend == "redis" && rdb != nil {
		idStore = identitystore.NewRedisStore(rdb, cfg.Identity.RedisKey, logger)
	} else {
		if cfg.Identity.Backend == "redis" {
			logger.Warn("Redis 不可用，身份持久化回退到文件后端")
		}
		idStore = identitystore.NewFileStore(cfg.Identity.FilePath, logger)
	}

	// 5. 初始化 JWT 管理器与本地提醒通道
	jwtMgr := jwt.NewManager(&cfg.Auth)

	var notifier alert.Notifier = alert.NoopNotifier{}
	if cfg.Alert.Enabled {
		notifier = alert.NewDesktopNotifier(logger)
	}

	// 6. 初始化公告文案生成器（密钥缺失时为 nil，生成功能降级）
	textGen, err := service.NewGeminiGenerator(context.Background(), &cfg.Gemini)
	if err != nil {
		logger.Warn("Gemini 初始化失败，公告生成功能将返回占位文案", zap.Error(err))
		textGen = nil
	}

	// 7. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository()
	repository.SeedDemoData(repo)

	svc := service.NewService(cfg, repo, jwtMgr, idStore, rdb, notifier, textGen, logger)
	h := handler.NewHandler(svc)

	// 8. 恢复持久化身份（失败降级为未登录，绝不阻断启动）
	svc.Auth.LoadPersisted(context.Background())

	// 9. 初始化路由
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 10. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 11. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}
