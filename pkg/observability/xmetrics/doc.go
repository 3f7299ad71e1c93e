// Package xmetrics 提供指标发布能力接口。
//
// 本包定义库内各组件发布指标所用的 Publisher 接口，
// 并提供两个实现：
//   - NoopPublisher：空实现，未配置指标后端时的默认值
//   - OTelPublisher：基于 OpenTelemetry Metrics 的实现
//
// # 指标类型
//
// Publisher 支持四类指标：
//   - Gauge：瞬时值（如当前在途消息数）
//   - Counter：累计值（如已发布消息总数）
//   - Summary：取值分布摘要（如处理耗时）
//   - Distribution：取值分布直方图
//
// 设计决策: Summary 与 Distribution 在 OTelPublisher 中均映射为 Histogram，
// 因为 OTel Metrics API 不区分两者；保留两个方法是为了与既有指标后端的
// 语义对齐，自定义实现可以区别处理。
//
// # 空值安全
//
// 包级辅助函数（PublishGauge 等）对 nil Publisher 安全，直接丢弃指标。
// 组件持有 Publisher 时无需逐处判空。
package xmetrics
