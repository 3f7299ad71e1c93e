// Package xpool 提供回调任务的 worker pool 实现。
//
// Pool 用于异步执行客户端回调（如消息到达、发布确认），
// 支持以下特性：
//   - 常驻 worker 数量与突发 worker 上限分离（minWorkers / maxWorkers）
//   - 突发 worker 空闲超过 maxIdleTime 后自动退出
//   - 可配置的队列大小（WithQueueSize）
//   - 优雅关闭（Close 处理完队列中的任务后返回）
//   - panic 恢复（单个任务 panic 不影响 pool）
//   - 队列满时返回 ErrQueueFull（Submit 永不阻塞）
//   - 可注入自定义日志记录器（WithLogger）
//   - 多实例场景下可设置名称以区分日志来源（WithName）
//
// # 注意事项
//
//   - New 创建后自动启动常驻 worker，无需手动 Start
//   - Submit 是非阻塞的，队列满且 worker 已达上限时返回 ErrQueueFull
//   - Close 不可在任务内调用，否则会死锁
//   - panic 的任务不会被重试，仅记录日志后丢弃
//
// # 弹性伸缩
//
// 设计决策: 常驻 worker 常开、突发 worker 按需创建并按空闲超时回收，
// 对应回调流量的典型形态：平时低水位、消费高峰短时突发。
// 队列有积压且 worker 未达上限时在 Submit 路径上扩容，
// 不引入额外的调度协程。
package xpool
