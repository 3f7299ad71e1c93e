// Package mq 提供消息队列相关的子包。
//
// 子包列表：
//   - xrabbit: RabbitMQ 客户端上下文的配置聚合
//
// 内部包：
//   - internal/mqcore: 共享的追踪契约与 OpenTelemetry 实现
//
// 设计原则：
//   - 策略与执行分离：配置聚合只声明策略，由上下文协作方执行
//   - 内置追踪上下文传播（W3C Trace Context）
//   - 可观测能力（指标、追踪）以接口注入，默认空实现
package mq
