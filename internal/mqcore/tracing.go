package mqcore

import "context"

// MessageMetadata 描述一次消息投递的元数据。
// 追踪实现从中读取属性并通过 Headers 注入/提取追踪上下文。
type MessageMetadata struct {
	// Exchange 消息发布到的交换机名称。
	Exchange string
	// RoutingKey 消息的路由键。
	RoutingKey string
	// Queue 消费侧的队列名称（生产侧为空）。
	Queue string
	// ConsumerTag 消费者标识（生产侧为空）。
	ConsumerTag string
	// MessageID 消息 ID，可能为空。
	MessageID string
	// Headers 消息头。追踪实现向其中注入或从中提取 W3C Trace Context。
	Headers map[string]string
}

// Span 表示一次追踪跨度的句柄。
// 由 ConsumerTracing/ProducerTracing 的 StartSpan 创建，调用方负责结束。
type Span interface {
	// End 结束跨度并记录结果。err 非 nil 时跨度标记为失败。
	End(err error)
}

// ConsumerTracing 定义消费侧追踪钩子。
// 跨度在消息交付给处理函数之前创建，覆盖整个处理过程。
type ConsumerTracing interface {
	// StartSpan 为一次消息处理创建跨度。
	// 返回携带跨度的 Context 和跨度句柄。
	StartSpan(ctx context.Context, md MessageMetadata) (context.Context, Span)
}

// ProducerTracing 定义生产侧追踪钩子。
// 跨度在消息发送时创建，由发布确认回调结束。
type ProducerTracing interface {
	// StartSpan 为一次消息发送创建跨度。
	// 返回携带跨度的 Context 和跨度句柄。
	StartSpan(ctx context.Context, md MessageMetadata) (context.Context, Span)
}

// NoopSpan 是空跨度实现。
type NoopSpan struct{}

// End 空实现，不做任何处理。
func (NoopSpan) End(_ error) {}

// NoopConsumerTracing 是 ConsumerTracing 的空实现。
// 当用户不需要消费侧追踪时使用。
type NoopConsumerTracing struct{}

// StartSpan 返回 ctx 和空跨度。nil ctx 会被替换为 context.Background()。
func (NoopConsumerTracing) StartSpan(ctx context.Context, _ MessageMetadata) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx, NoopSpan{}
}

// NoopProducerTracing 是 ProducerTracing 的空实现。
// 当用户不需要生产侧追踪时使用。
type NoopProducerTracing struct{}

// StartSpan 返回 ctx 和空跨度。nil ctx 会被替换为 context.Background()。
func (NoopProducerTracing) StartSpan(ctx context.Context, _ MessageMetadata) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx, NoopSpan{}
}

// 确保空实现满足接口。
var (
	_ ConsumerTracing = NoopConsumerTracing{}
	_ ProducerTracing = NoopProducerTracing{}
	_ Span            = NoopSpan{}
)
