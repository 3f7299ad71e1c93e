// Package xrabbit 提供 RabbitMQ 客户端上下文的配置聚合。
//
// ContextOptions 是客户端上下文（连接管理、channel 复用、发布确认、
// 消费分发等子系统）构造前的唯一策略入口：异步回调的线程池、
// 错误/恢复/挂起消息的上报回调、指标与链路追踪能力、
// 呈现给 Broker 的客户端身份表、以及基于时间的健康阈值，
// 均在此声明并在上下文构造时一次性读取。
//
// 本包只声明策略，不执行策略：不做网络 I/O，不实现线程池与监控器，
// 除保留身份键校验外不做任何强制。
//
// # 基本使用
//
// 使用 NewContextOptions 创建聚合器，通过链式 Set* 方法配置，
// 最后交给上下文构造方：
//
//	opts := xrabbit.NewContextOptions().
//		SetErrorCallback(func(detail xrabbit.ErrorDetail) {
//			log.Printf("broker error: %s", detail.Reason)
//		}).
//		SetMessageProcessingTimeout(30 * time.Second)
//
// 所有 Set* 方法返回聚合器自身，不返回错误：每个方法自行声明
// 静默接受或静默拒绝的策略（见各方法文档）。
//
// # 客户端身份表
//
// 身份表在连接协商时呈现给 Broker。以下键由库计算且不可覆盖：
// capabilities、platform、product、version、connection_name；
// 以下键由库计算默认值、调用方可覆盖：task、pid、os、os_version、os_patch。
// 对保留键的覆盖尝试被静默忽略（调用被接受但不生效）。
//
// # 生命周期
//
// 聚合器设计为单协程同步配置，配置阶段不加锁也不需要加锁；
// 并发修改同一聚合器属于契约外行为。
// 上下文构造方通过 Snapshot 一次性深拷贝全部字段，
// 此后对聚合器的修改不会影响已构造的上下文。
//
// 设计决策: Snapshot 采用构造时拷贝而非共享引用，
// 消除"上下文构造后修改聚合器是否可见"的未定义行为。
//
// # 回调执行线程
//
// 错误/恢复回调由上下文在连接事件时调用；挂起消息回调由外部周期监控器
// 在其自有协程上调用（不在调用方协程、不在 worker pool 上），
// 回调接收方对自身状态的访问必须是并发安全的。
//
// 消息处理超时由周期采样监控器检测：超时仅触发告警回调，不取消处理；
// 告警不保证在超时到期时立即触发，且在超时到期与下次采样之间完成的
// 处理可能产生误报。这是已接受的精度限制，不是缺陷。
package xrabbit
