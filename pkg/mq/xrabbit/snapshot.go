package xrabbit

import (
	"sort"
	"time"

	"github.com/omeyang/rabbitx/pkg/observability/xmetrics"
	"github.com/omeyang/rabbitx/pkg/util/xpool"
)

// Snapshot 是聚合器在被消费时刻的不可变深拷贝。
//
// 上下文构造方读取 Snapshot 而非聚合器本身："已消费"因此成为硬终态——
// 构造后对聚合器的任何修改都不会被已构造的上下文观察到。
// 为新的上下文配置新策略时，应构建新的聚合器。
type Snapshot struct {
	// ThreadPool 注入的线程池引用，未设置时为 nil，
	// 此时上下文按 DefaultThreadPool* 常量自建。
	ThreadPool *xpool.Pool

	// MetricPublisher 指标发布器，未设置时为空实现。
	MetricPublisher xmetrics.Publisher

	// ErrorCallback 错误回调，未设置时为空实现。
	ErrorCallback ErrorCallback

	// SuccessCallback 恢复回调，未设置时为空实现。
	SuccessCallback SuccessCallback

	// HungMessageCallback 挂起消息回调，未设置时为空实现。
	HungMessageCallback HungMessageCallback

	// ClientProperties 连接协商时呈现给 Broker 的身份表。
	ClientProperties FieldTable

	// MessageProcessingTimeout 消息处理超时。
	MessageProcessingTimeout time.Duration

	// ConnectionErrorThreshold 连接错误阈值，
	// HasConnectionErrorThreshold 为 false 时无意义。
	ConnectionErrorThreshold time.Duration

	// HasConnectionErrorThreshold 报告连接错误阈值是否已设置。
	HasConnectionErrorThreshold bool

	// Tunables 按字典序排序的 tunable 列表。
	Tunables []string

	// ConsumerTracing 消费侧追踪实现，未设置时为空实现。
	ConsumerTracing ConsumerTracing

	// ProducerTracing 生产侧追踪实现，未设置时为空实现。
	ProducerTracing ProducerTracing

	// ShuffleConnectionEndpoints 端点乱序取值，
	// ShuffleConnectionEndpointsSet 为 false 时无意义。
	ShuffleConnectionEndpoints bool

	// ShuffleConnectionEndpointsSet 报告端点乱序是否已显式设置。
	ShuffleConnectionEndpointsSet bool
}

// Snapshot 深拷贝当前配置。身份表与 tunable 集合被复制；
// 能力引用（线程池、指标发布器、追踪实现、回调）按引用拷贝，
// 其生命周期约定见各字段文档。
func (o *ContextOptions) Snapshot() Snapshot {
	return Snapshot{
		ThreadPool:                    o.threadPool,
		MetricPublisher:               o.metricPublisher,
		ErrorCallback:                 o.onError,
		SuccessCallback:               o.onSuccess,
		HungMessageCallback:           o.onHungMessage,
		ClientProperties:              o.clientProperties.Clone(),
		MessageProcessingTimeout:      o.messageProcessingTimeout,
		ConnectionErrorThreshold:      o.connectionErrorThreshold,
		HasConnectionErrorThreshold:   o.hasConnectionErrorThreshold,
		Tunables:                      sortedKeys(o.tunables),
		ConsumerTracing:               o.consumerTracing,
		ProducerTracing:               o.producerTracing,
		ShuffleConnectionEndpoints:    o.shuffleConnectionEndpoints,
		ShuffleConnectionEndpointsSet: o.shuffleSet,
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
