package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/handler"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App представляет приложение сервиса коротких ссылок
type App struct {
	config  *config.Config
	logger  *zap.Logger
	handler *handler.Handler
}

// New создает новый экземпляр приложения
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return newApp(cfg, logger), nil
}

func newApp(cfg *config.Config, logger *zap.Logger) *App {
	return &App{
		config:  cfg,
		logger:  logger,
		handler: initDependencies(cfg, logger),
	}
}

// newLogger собирает zap логгер. Уровень debug включает консольный формат для разработки.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}

// Run запускает приложение и блокируется до SIGINT/SIGTERM
func Run() error {
	app, err := New()
	if err != nil {
		return err
	}
	defer func() { _ = app.logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.serve(ctx)
}
