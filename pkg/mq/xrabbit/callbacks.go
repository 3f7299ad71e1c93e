package xrabbit

import "time"

// ErrorDetail 描述一次 Broker 侧错误。
// 在 Broker 主动关闭 channel/连接、或连接错误阈值被突破时
// 由上下文传递给错误回调。
type ErrorDetail struct {
	// Reason 人类可读的错误描述。
	Reason string
	// Code AMQP 应答码（如 320 CONNECTION_FORCED），无应答码时为 0。
	Code int
}

// ErrorCallback 在 Broker 关闭 channel/连接或连接错误阈值突破时被调用。
// 本库对请求的操作无限重试，注册错误回调以感知持续的重试，
// 由应用按自身需要实施熔断。
type ErrorCallback func(detail ErrorDetail)

// SuccessCallback 在 channel/连接恢复时被调用。
type SuccessCallback func()

// HungMessageDetail 描述一条处理超时的消息。
// 由周期采样的连接监控器检测，采样粒度意味着告警不保证在
// 超时到期时立即触发，且可能对刚完成的处理产生误报。
type HungMessageDetail struct {
	// Queue 消息所属队列。
	Queue string
	// ConsumerTag 处理该消息的消费者标识。
	ConsumerTag string
	// MessageID 消息 ID，可能为空。
	MessageID string
	// Elapsed 自消息交付起的耗时（采样时刻测量）。
	Elapsed time.Duration
	// Timeout 配置的消息处理超时。
	Timeout time.Duration
}

// HungMessageCallback 在监控器检测到挂起消息时被调用。
// 回调在监控器自有协程上执行（不在调用方协程、不在 worker pool 上），
// 回调接收方对自身状态的访问必须是并发安全的。
type HungMessageCallback func(detail HungMessageDetail)

// noopErrorCallback 错误回调的默认空实现。
func noopErrorCallback(_ ErrorDetail) {}

// noopSuccessCallback 恢复回调的默认空实现。
func noopSuccessCallback() {}

// noopHungMessageCallback 挂起消息回调的默认空实现。
func noopHungMessageCallback(_ HungMessageDetail) {}
