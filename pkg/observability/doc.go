// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xmetrics: 指标发布能力接口与 OpenTelemetry 实现
//
// 设计原则：
//   - 遵循 OpenTelemetry 语义规范
//   - 能力以接口注入，未配置时使用空实现
package observability
