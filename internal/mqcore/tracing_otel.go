package mqcore

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const defaultInstrumentationName = "github.com/omeyang/rabbitx/xrabbit"

type otelTracingConfig struct {
	instrumentationName string
	tracerProvider      trace.TracerProvider
	propagator          propagation.TextMapPropagator
}

// OTelTracingOption 定义 OTel 追踪实现的配置选项。
type OTelTracingOption func(*otelTracingConfig)

// WithOTelTracerProvider 设置 TracerProvider。
// 默认使用全局 otel.GetTracerProvider()。传入 nil 将被忽略。
func WithOTelTracerProvider(provider trace.TracerProvider) OTelTracingOption {
	return func(cfg *otelTracingConfig) {
		if provider != nil {
			cfg.tracerProvider = provider
		}
	}
}

// WithOTelPropagator 设置自定义的 Propagator。
// 默认使用 W3C TraceContext + Baggage 组合。传入 nil 将被忽略。
func WithOTelPropagator(propagator propagation.TextMapPropagator) OTelTracingOption {
	return func(cfg *otelTracingConfig) {
		if propagator != nil {
			cfg.propagator = propagator
		}
	}
}

// WithOTelInstrumentationName 设置 instrumentation 名称。
func WithOTelInstrumentationName(name string) OTelTracingOption {
	return func(cfg *otelTracingConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

func newOTelTracingConfig(opts []OTelTracingOption) *otelTracingConfig {
	cfg := &otelTracingConfig{
		instrumentationName: defaultInstrumentationName,
		propagator: propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (cfg *otelTracingConfig) tracer() trace.Tracer {
	provider := cfg.tracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return provider.Tracer(cfg.instrumentationName)
}

// messagingAttrs 构建 OTel 语义约定的消息属性。
func messagingAttrs(md MessageMetadata) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "rabbitmq"),
	}
	if md.Exchange != "" {
		attrs = append(attrs, attribute.String("messaging.destination.name", md.Exchange))
	}
	if md.RoutingKey != "" {
		attrs = append(attrs, attribute.String("messaging.rabbitmq.destination.routing_key", md.RoutingKey))
	}
	if md.Queue != "" {
		attrs = append(attrs, attribute.String("messaging.destination.subscription.name", md.Queue))
	}
	if md.ConsumerTag != "" {
		attrs = append(attrs, attribute.String("messaging.consumer.group.name", md.ConsumerTag))
	}
	if md.MessageID != "" {
		attrs = append(attrs, attribute.String("messaging.message.id", md.MessageID))
	}
	return attrs
}

// otelSpan 包装 trace.Span 实现 Span 接口。
type otelSpan struct {
	span trace.Span
}

// End 结束跨度。err 非 nil 时记录错误并标记跨度状态为 Error。
func (s otelSpan) End(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
}

// OTelConsumerTracing 是基于 OpenTelemetry 的消费侧追踪实现。
// 从消息头提取 W3C Trace Context 作为父上下文，创建 Consumer 类型跨度。
type OTelConsumerTracing struct {
	cfg *otelTracingConfig
}

// NewOTelConsumerTracing 创建消费侧 OTel 追踪实现。
func NewOTelConsumerTracing(opts ...OTelTracingOption) OTelConsumerTracing {
	return OTelConsumerTracing{cfg: newOTelTracingConfig(opts)}
}

// StartSpan 创建消费跨度。
// 消息头中的追踪上下文（traceparent/tracestate）优先作为父跨度。
func (t OTelConsumerTracing) StartSpan(ctx context.Context, md MessageMetadata) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if md.Headers != nil {
		ctx = t.cfg.propagator.Extract(ctx, propagation.MapCarrier(md.Headers))
	}
	ctx, span := t.cfg.tracer().Start(ctx, consumerSpanName(md),
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(messagingAttrs(md)...),
	)
	return ctx, otelSpan{span: span}
}

// OTelProducerTracing 是基于 OpenTelemetry 的生产侧追踪实现。
// 创建 Producer 类型跨度并将追踪上下文注入消息头，
// 跨度由发布确认回调通过 Span.End 结束。
type OTelProducerTracing struct {
	cfg *otelTracingConfig
}

// NewOTelProducerTracing 创建生产侧 OTel 追踪实现。
func NewOTelProducerTracing(opts ...OTelTracingOption) OTelProducerTracing {
	return OTelProducerTracing{cfg: newOTelTracingConfig(opts)}
}

// StartSpan 创建生产跨度并向 md.Headers 注入追踪上下文。
// md.Headers 为 nil 时跳过注入，跨度仍然创建。
func (t OTelProducerTracing) StartSpan(ctx context.Context, md MessageMetadata) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := t.cfg.tracer().Start(ctx, producerSpanName(md),
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(messagingAttrs(md)...),
	)
	if md.Headers != nil {
		t.cfg.propagator.Inject(ctx, propagation.MapCarrier(md.Headers))
	}
	return ctx, otelSpan{span: span}
}

// 跨度命名遵循 OTel 消息语义约定："{destination} {operation}"。
func consumerSpanName(md MessageMetadata) string {
	if md.Queue != "" {
		return md.Queue + " process"
	}
	return "process"
}

func producerSpanName(md MessageMetadata) string {
	if md.Exchange != "" {
		return md.Exchange + " publish"
	}
	return "publish"
}

var (
	_ ConsumerTracing = OTelConsumerTracing{}
	_ ProducerTracing = OTelProducerTracing{}
)
