package otel

import (
	"camp-signup-system/config"
	"camp-signup-system/tools"
	"context"
	"net"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const TracerName = "camp-signup-system"

var tracerProvider *sdktrace.TracerProvider

// OTLP over HTTP，不启用 TLS
func newOTLPExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	cfg := config.Get().OTel
	return otlptracehttp.New(ctx,
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpoint(net.JoinHostPort(cfg.AgentHost, cfg.AgentPort)),
	)
}

// 只带 SDK 与服务名属性，不合并 resource.Default()
func newResource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceName(config.Get().OTel.ServiceName),
		),
	)
}

func Init() {
	ctx := context.Background()
	res, err := newResource(ctx)
	tools.PanicOnErr(err)

	exp, err := newOTLPExporter(ctx)
	tools.PanicOnErr(err)

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(sdktrace.NewBatchSpanProcessor(exp)),
	)
	otel.SetTracerProvider(tracerProvider)
}

// Tracer 返回全局 TracerProvider 上的 tracer，未 Init 时为 no-op
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// Shutdown 刷新并关闭导出器
func Shutdown(ctx context.Context) error {
	if tracerProvider != nil {
		return tracerProvider.Shutdown(ctx)
	}
	return nil
}
