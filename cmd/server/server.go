package server

import (
	"camp-signup-system/config"
	"camp-signup-system/internal/global/database"
	"camp-signup-system/internal/global/logger"
	"camp-signup-system/internal/global/middleware"
	internalOtel "camp-signup-system/internal/global/otel"
	"camp-signup-system/internal/global/sentry"
	"camp-signup-system/internal/module"
	"camp-signup-system/tools"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if err := sentry.Init(); err != nil {
		log.Error("Sentry 初始化失败", "error", err)
	}

	database.Init()

	if config.Get().OTel.Enable {
		log.Info("OTel Enabled")
		internalOtel.Init()
	}

	InitModules()
}

// InitModules 初始化各业务模块，需在 database.Init 之后调用
func InitModules() {
	if log == nil {
		log = logger.New("Server")
	}
	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

// NewEngine 组装中间件与各模块路由
func NewEngine() *gin.Engine {
	cfg := config.Get()
	gin.SetMode(string(cfg.Mode))
	r := gin.New()

	switch cfg.Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}

	r.Use(sentry.Middleware())
	if cfg.Sentry.Dsn != "" {
		r.Use(middleware.SentryEnrichIP())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	if cfg.OTel.Enable {
		r.Use(middleware.Trace())
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + cfg.Prefix))
	}
	return r
}

func Run() {
	defer shutdown()

	r := NewEngine()
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}

func shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := internalOtel.Shutdown(ctx); err != nil {
		log.Error("Failed to shutdown TracerProvider", "error", err)
	}
	sentry.Flush(2 * time.Second)
}
