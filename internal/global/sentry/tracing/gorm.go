package tracing

import (
	"camp-signup-system/config"
	"time"

	"github.com/getsentry/sentry-go"
	"gorm.io/gorm"
)

const (
	gormSpanKey    = "sentry:span"
	gormStartKey   = "sentry:start"
	callbackPrefix = "sentry_tracing"
)

// GormTracingPlugin 实现 GORM Plugin 接口，为每条 SQL 创建 Sentry 子 span
type GormTracingPlugin struct {
	// slowThreshold 慢查询阈值，低于该值的 span 不上报；0 表示全部上报
	slowThreshold time.Duration
}

func NewGormTracingPlugin() *GormTracingPlugin {
	ms := config.Get().Sentry.DBSlowThresholdMs
	return &GormTracingPlugin{slowThreshold: time.Duration(ms) * time.Millisecond}
}

func (p *GormTracingPlugin) Name() string {
	return "SentryTracingPlugin"
}

// Initialize 在 gorm 的各类回调前后挂上开始/结束 span
func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	system := db.Dialector.Name()
	cb := db.Callback()

	hooks := []struct {
		name      string
		operation string
		before    func(name string, fn func(*gorm.DB)) error
		after     func(name string, fn func(*gorm.DB)) error
	}{
		{"create", "db.sql.create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", "db.sql.query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", "db.sql.update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", "db.sql.delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", "db.sql.row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", "db.sql.raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}
	for _, h := range hooks {
		if err := h.before(callbackPrefix+":before_"+h.name, p.beforeCallback(h.operation, system)); err != nil {
			return err
		}
		if err := h.after(callbackPrefix+":after_"+h.name, p.afterCallback); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) beforeCallback(operation, system string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		db.InstanceSet(gormStartKey, time.Now())

		parentSpan := sentry.SpanFromContext(db.Statement.Context)
		if parentSpan == nil {
			return
		}

		span := parentSpan.StartChild(operation)
		span.Description = statementDescription(db)
		span.SetData("db.system", system)

		db.InstanceSet(gormSpanKey, span)
		db.Statement.Context = span.Context()
	}
}

func (p *GormTracingPlugin) afterCallback(db *gorm.DB) {
	if db.Statement == nil {
		return
	}

	startVal, ok := db.InstanceGet(gormStartKey)
	if !ok {
		return
	}
	startTime, ok := startVal.(time.Time)
	if !ok {
		return
	}
	spanVal, ok := db.InstanceGet(gormSpanKey)
	if !ok {
		return
	}
	span, ok := spanVal.(*sentry.Span)
	if !ok || span == nil {
		return
	}

	// sentry-go 不能丢弃 span，只能标记为不采样
	if p.slowThreshold > 0 && time.Since(startTime) < p.slowThreshold {
		span.Sampled = sentry.SampledFalse
	}

	span.SetData("db.rows_affected", db.RowsAffected)
	if db.Error != nil {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("db.error", db.Error.Error())
	} else {
		span.Status = sentry.SpanStatusOK
	}
	span.Finish()
}

// statementDescription 只记录表名，避免把参数写进 span
func statementDescription(db *gorm.DB) string {
	if db.Statement == nil || db.Statement.Table == "" {
		return "unknown"
	}
	return db.Statement.Table
}
