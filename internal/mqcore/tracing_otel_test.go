package mqcore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newTestTracerProvider() (*sdktrace.TracerProvider, *tracetest.InMemoryExporter) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)
	return tp, exporter
}

// =============================================================================
// 配置选项测试
// =============================================================================

func TestOTelTracingOptions_Defaults(t *testing.T) {
	cfg := newOTelTracingConfig(nil)

	assert.Equal(t, defaultInstrumentationName, cfg.instrumentationName)
	assert.NotNil(t, cfg.propagator)
	assert.Nil(t, cfg.tracerProvider)
}

func TestOTelTracingOptions_NilIgnored(t *testing.T) {
	cfg := newOTelTracingConfig([]OTelTracingOption{
		WithOTelTracerProvider(nil),
		WithOTelPropagator(nil),
		WithOTelInstrumentationName(""),
	})

	// nil/空值应被忽略，保持默认
	assert.Equal(t, defaultInstrumentationName, cfg.instrumentationName)
	assert.NotNil(t, cfg.propagator)
	assert.Nil(t, cfg.tracerProvider)
}

func TestOTelTracingOptions_Custom(t *testing.T) {
	tp, _ := newTestTracerProvider()
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{})

	cfg := newOTelTracingConfig([]OTelTracingOption{
		WithOTelTracerProvider(tp),
		WithOTelPropagator(propagator),
		WithOTelInstrumentationName("custom"),
	})

	assert.Equal(t, "custom", cfg.instrumentationName)
	assert.Equal(t, tp, cfg.tracerProvider)
}

// =============================================================================
// 消费侧追踪测试
// =============================================================================

func TestOTelConsumerTracing_StartSpan(t *testing.T) {
	tp, exporter := newTestTracerProvider()
	tracing := NewOTelConsumerTracing(WithOTelTracerProvider(tp))

	md := MessageMetadata{
		Exchange:    "orders",
		RoutingKey:  "order.created",
		Queue:       "order-worker",
		ConsumerTag: "ctag-1",
		MessageID:   "msg-1",
		Headers:     map[string]string{},
	}
	ctx, span := tracing.StartSpan(context.Background(), md)
	require.NotNil(t, span)
	assert.True(t, trace.SpanContextFromContext(ctx).IsValid())

	span.End(nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "order-worker process", spans[0].Name)
	assert.Equal(t, trace.SpanKindConsumer, spans[0].SpanKind)
}

func TestOTelConsumerTracing_ExtractsParent(t *testing.T) {
	tp, exporter := newTestTracerProvider()
	producer := NewOTelProducerTracing(WithOTelTracerProvider(tp))
	consumer := NewOTelConsumerTracing(WithOTelTracerProvider(tp))

	// 生产侧注入追踪上下文到消息头
	headers := map[string]string{}
	_, producerSpan := producer.StartSpan(context.Background(), MessageMetadata{
		Exchange: "orders",
		Headers:  headers,
	})
	require.Contains(t, headers, "traceparent")

	// 消费侧从消息头提取父上下文
	_, consumerSpan := consumer.StartSpan(context.Background(), MessageMetadata{
		Queue:   "order-worker",
		Headers: headers,
	})
	consumerSpan.End(nil)
	producerSpan.End(nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	// 消费跨度与生产跨度属于同一条链路
	assert.Equal(t, spans[1].SpanContext.TraceID(), spans[0].SpanContext.TraceID())
	assert.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())
}

func TestOTelConsumerTracing_NilHeaders(t *testing.T) {
	tp, exporter := newTestTracerProvider()
	tracing := NewOTelConsumerTracing(WithOTelTracerProvider(tp))

	_, span := tracing.StartSpan(context.Background(), MessageMetadata{Queue: "q"})
	span.End(nil)

	require.Len(t, exporter.GetSpans(), 1)
}

func TestOTelConsumerTracing_EndWithError(t *testing.T) {
	tp, exporter := newTestTracerProvider()
	tracing := NewOTelConsumerTracing(WithOTelTracerProvider(tp))

	_, span := tracing.StartSpan(context.Background(), MessageMetadata{Queue: "q"})
	span.End(assert.AnError)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "exception", spans[0].Events[0].Name)
}

// =============================================================================
// 生产侧追踪测试
// =============================================================================

func TestOTelProducerTracing_StartSpan(t *testing.T) {
	tp, exporter := newTestTracerProvider()
	tracing := NewOTelProducerTracing(WithOTelTracerProvider(tp))

	headers := map[string]string{}
	ctx, span := tracing.StartSpan(context.Background(), MessageMetadata{
		Exchange:   "orders",
		RoutingKey: "order.created",
		Headers:    headers,
	})
	assert.True(t, trace.SpanContextFromContext(ctx).IsValid())
	// 追踪上下文应已注入消息头
	assert.Contains(t, headers, "traceparent")

	span.End(nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "orders publish", spans[0].Name)
	assert.Equal(t, trace.SpanKindProducer, spans[0].SpanKind)
}

func TestOTelProducerTracing_NilHeaders(t *testing.T) {
	tp, exporter := newTestTracerProvider()
	tracing := NewOTelProducerTracing(WithOTelTracerProvider(tp))

	// nil Headers 时跳过注入，跨度仍然创建
	_, span := tracing.StartSpan(context.Background(), MessageMetadata{Exchange: "ex"})
	span.End(nil)

	require.Len(t, exporter.GetSpans(), 1)
}

func TestOTelProducerTracing_NilContext(t *testing.T) {
	tp, _ := newTestTracerProvider()
	tracing := NewOTelProducerTracing(WithOTelTracerProvider(tp))

	assert.NotPanics(t, func() {
		_, span := tracing.StartSpan(nil, MessageMetadata{}) //nolint:staticcheck // 验证 nil ctx 兜底
		span.End(nil)
	})
}

func TestSpanNames_EmptyMetadata(t *testing.T) {
	assert.Equal(t, "process", consumerSpanName(MessageMetadata{}))
	assert.Equal(t, "publish", producerSpanName(MessageMetadata{}))
}
