package xrabbit

import "github.com/omeyang/rabbitx/internal/mqcore"

// MessageMetadata 描述一次消息投递的元数据，供追踪实现使用。
type MessageMetadata = mqcore.MessageMetadata

// Span 表示一次追踪跨度的句柄。
type Span = mqcore.Span

// ConsumerTracing 定义消费侧追踪钩子。
// 跨度在消息交付给处理函数之前创建，处理完成后结束。
type ConsumerTracing = mqcore.ConsumerTracing

// ProducerTracing 定义生产侧追踪钩子。
// 跨度在消息发送时创建，保持存活直到对应的发布确认回调。
type ProducerTracing = mqcore.ProducerTracing

// NoopConsumerTracing 是消费侧追踪的空实现，用于禁用追踪或作为默认值。
type NoopConsumerTracing = mqcore.NoopConsumerTracing

// NoopProducerTracing 是生产侧追踪的空实现，用于禁用追踪或作为默认值。
type NoopProducerTracing = mqcore.NoopProducerTracing

// OTelConsumerTracing 是基于 OpenTelemetry 的消费侧追踪实现。
type OTelConsumerTracing = mqcore.OTelConsumerTracing

// OTelProducerTracing 是基于 OpenTelemetry 的生产侧追踪实现。
type OTelProducerTracing = mqcore.OTelProducerTracing

// OTelTracingOption 定义 OTel 追踪实现的配置选项。
type OTelTracingOption = mqcore.OTelTracingOption

// NewOTelConsumerTracing 创建消费侧 OTel 追踪实现。
var NewOTelConsumerTracing = mqcore.NewOTelConsumerTracing

// NewOTelProducerTracing 创建生产侧 OTel 追踪实现。
var NewOTelProducerTracing = mqcore.NewOTelProducerTracing

// WithOTelTracerProvider 设置 TracerProvider。
var WithOTelTracerProvider = mqcore.WithOTelTracerProvider

// WithOTelPropagator 设置自定义的 Propagator。
var WithOTelPropagator = mqcore.WithOTelPropagator

// WithOTelInstrumentationName 设置 instrumentation 名称。
var WithOTelInstrumentationName = mqcore.WithOTelInstrumentationName
