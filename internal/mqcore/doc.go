// Package mqcore 提供 RabbitMQ 客户端的共享追踪核心。
//
// 本包是 internal 包，仅供 pkg/mq/xrabbit 包内部使用。
// 外部用户应通过 xrabbit 的类型别名访问这些类型。
//
// 主要功能：
//   - MessageMetadata：消息元数据（交换机、路由键、消息头等）
//   - Span 接口：追踪跨度句柄
//   - ConsumerTracing / ProducerTracing 接口：消费/生产侧追踪钩子
//   - NoopConsumerTracing / NoopProducerTracing：空实现，用于禁用追踪
//   - OTelConsumerTracing / OTelProducerTracing：基于 OpenTelemetry 的实现
//
// 跨度生命周期约定：
//   - 消费侧跨度在消息交付给处理函数之前创建，处理完成后结束
//   - 生产侧跨度在消息发送时创建，保持存活直到对应的发布确认回调，
//     由确认回调负责调用 Span.End
package mqcore
