// Package tracing 提供 Sentry 性能追踪的集成，目前覆盖 GORM 和业务操作
package tracing

import (
	"camp-signup-system/config"
	"context"

	"github.com/getsentry/sentry-go"
)

// IsEnabled 检查 Sentry 追踪是否已启用
func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}

// StartSpan 在 ctx 中的 transaction 下创建子 span，返回携带子 span 的 ctx 和结束函数
// 没有父 span 时原样返回 ctx，结束函数为空操作
//
//	ctx, finish := tracing.StartSpan(ctx, "store.delete_activity", "activities")
//	defer finish()
func StartSpan(ctx context.Context, operation, description string) (context.Context, func()) {
	parentSpan := sentry.SpanFromContext(ctx)
	if parentSpan == nil {
		return ctx, func() {}
	}

	span := parentSpan.StartChild(operation)
	span.Description = description
	return span.Context(), span.Finish
}
