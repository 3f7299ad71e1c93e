package xrabbit

import (
	"time"

	"github.com/omeyang/rabbitx/pkg/observability/xmetrics"
	"github.com/omeyang/rabbitx/pkg/util/xpool"
)

// DefaultMessageProcessingTimeout 消息处理超时的默认值。
const DefaultMessageProcessingTimeout = 60 * time.Second

// 上下文构造方在未注入线程池时，按以下常量创建默认线程池。
const (
	// DefaultThreadPoolMinWorkers 默认线程池的常驻 worker 数量。
	DefaultThreadPoolMinWorkers = 1
	// DefaultThreadPoolMaxWorkers 默认线程池的 worker 上限。
	DefaultThreadPoolMaxWorkers = 20
	// DefaultThreadPoolMaxIdleTime 默认线程池突发 worker 的空闲回收时间。
	DefaultThreadPoolMaxIdleTime = 60 * time.Second
)

// ContextOptions 聚合客户端上下文的全部构造策略。
//
// 可变、单一所有者：设计为单协程同步配置后一次性交给上下文构造方
// （通过 Snapshot 读取），不提供内部加锁。
// 所有 Set* 方法返回聚合器自身以支持链式调用；标量字段最后写入生效，
// 身份表与 tunable 集合为累加语义。
//
// 聚合器不拥有它持有的任何能力引用：线程池、指标发布器、
// 追踪实现的生命周期由调用方管理，线程池必须存活长于构造出的上下文。
type ContextOptions struct {
	threadPool      *xpool.Pool
	metricPublisher xmetrics.Publisher

	onError       ErrorCallback
	onSuccess     SuccessCallback
	onHungMessage HungMessageCallback

	clientProperties FieldTable

	messageProcessingTimeout    time.Duration
	connectionErrorThreshold    time.Duration
	hasConnectionErrorThreshold bool

	tunables map[string]struct{}

	consumerTracing ConsumerTracing
	producerTracing ProducerTracing

	shuffleConnectionEndpoints bool
	shuffleSet                 bool
}

// NewContextOptions 创建带库默认值的聚合器：
//   - 无线程池引用（上下文将按 DefaultThreadPool* 常量自建）
//   - 指标发布、错误/恢复/挂起消息回调均为空实现
//   - 身份表预置保留键与可覆盖默认键的库计算值
//   - 消息处理超时 60 秒
//   - 无连接错误阈值（仅凭建连耗时永不升级）
//   - tunable 集合为空，追踪关闭，端点乱序未设置
func NewContextOptions() *ContextOptions {
	return &ContextOptions{
		metricPublisher:          xmetrics.NoopPublisher{},
		onError:                  noopErrorCallback,
		onSuccess:                noopSuccessCallback,
		onHungMessage:            noopHungMessageCallback,
		clientProperties:         defaultClientProperties(),
		messageProcessingTimeout: DefaultMessageProcessingTimeout,
		tunables:                 map[string]struct{}{},
		consumerTracing:          NoopConsumerTracing{},
		producerTracing:          NoopProducerTracing{},
	}
}

// SetThreadPool 设置异步回调（消息到达、发布确认）共用的线程池。
// 聚合器持有非拥有引用：pool 必须存活长于由本聚合器构造出的上下文，
// 生命周期由调用方负责，本方法无从校验。
// 未设置时上下文按 DefaultThreadPool* 常量自建线程池。
func (o *ContextOptions) SetThreadPool(pool *xpool.Pool) *ContextOptions {
	o.threadPool = pool
	return o
}

// SetMetricPublisher 设置库生成指标的发布器。
// 传入 nil 将被忽略，保持空实现。
func (o *ContextOptions) SetMetricPublisher(publisher xmetrics.Publisher) *ContextOptions {
	if publisher != nil {
		o.metricPublisher = publisher
	}
	return o
}

// SetErrorCallback 设置错误回调，在 Broker 关闭 channel/连接
// 或连接错误阈值突破时由上下文调用。传入 nil 将被忽略，保持空实现。
func (o *ContextOptions) SetErrorCallback(callback ErrorCallback) *ContextOptions {
	if callback != nil {
		o.onError = callback
	}
	return o
}

// SetSuccessCallback 设置恢复回调，在 channel/连接恢复时由上下文调用。
// 传入 nil 将被忽略，保持空实现。
func (o *ContextOptions) SetSuccessCallback(callback SuccessCallback) *ContextOptions {
	if callback != nil {
		o.onSuccess = callback
	}
	return o
}

// SetHungMessageCallback 设置挂起消息回调，由外部周期监控器
// 在其自有协程上调用（见 HungMessageCallback 文档）。
// 传入 nil 将被忽略，保持空实现。
func (o *ContextOptions) SetHungMessageCallback(callback HungMessageCallback) *ContextOptions {
	if callback != nil {
		o.onHungMessage = callback
	}
	return o
}

// SetClientProperty 设置客户端身份键。
//
// task、pid、os、os_version、os_patch 由库计算默认值，可通过本方法覆盖，
// 最后写入生效；capabilities、platform、product、version、connection_name
// 为保留键，调用被接受但不生效（身份表始终呈现库计算值）。
func (o *ContextOptions) SetClientProperty(name string, value FieldValue) *ContextOptions {
	o.clientProperties = applyClientProperty(o.clientProperties, name, value)
	return o
}

// SetMessageProcessingTimeout 设置消费者处理单条消息的预期时限。
// 处理超过该时限的消息由周期采样监控器检测并触发告警（不取消处理），
// 告警时机受采样粒度影响，见包文档。
//
// 本方法不做上下界校验：零值或负值被接受并透传，
// 监控器对此类取值的行为由其自身定义。
func (o *ContextOptions) SetMessageProcessingTimeout(timeout time.Duration) *ContextOptions {
	o.messageProcessingTimeout = timeout
	return o
}

// SetConnectionErrorThreshold 设置建连无果的升级阈值：
// 距最近一次成功建连的时长超过该阈值时，错误回调被调用（按采样粒度评估）。
func (o *ContextOptions) SetConnectionErrorThreshold(threshold time.Duration) *ContextOptions {
	o.connectionErrorThreshold = threshold
	o.hasConnectionErrorThreshold = true
	return o
}

// ClearConnectionErrorThreshold 清除连接错误阈值，
// 恢复为"仅凭建连耗时永不升级"的默认行为。
func (o *ContextOptions) ClearConnectionErrorThreshold() *ContextOptions {
	o.connectionErrorThreshold = 0
	o.hasConnectionErrorThreshold = false
	return o
}

// SetConsumerTracing 设置消费侧追踪实现。
// 传入 nil 将被忽略，保持追踪关闭（空实现）。
func (o *ContextOptions) SetConsumerTracing(tracing ConsumerTracing) *ContextOptions {
	if tracing != nil {
		o.consumerTracing = tracing
	}
	return o
}

// SetProducerTracing 设置生产侧追踪实现。
// 传入 nil 将被忽略，保持追踪关闭（空实现）。
func (o *ContextOptions) SetProducerTracing(tracing ProducerTracing) *ContextOptions {
	if tracing != nil {
		o.producerTracing = tracing
	}
	return o
}

// UseRabbitMQFieldValueEncoding 接受并丢弃取值。
//
// Deprecated: 曾用于在 AMQP 规范与 RabbitMQ 规范的字段值编码之间切换，
// 库现在始终使用 RabbitMQ 规范编码。保留本方法仅为旧调用方的源码兼容，
// 永久无效。
func (o *ContextOptions) UseRabbitMQFieldValueEncoding(_ bool) *ContextOptions {
	return o
}

// SetShuffleConnectionEndpoints 设置是否乱序连接端点。
//
// 默认（未设置）时按解析顺序连接，通常偏向最长子网前缀匹配的节点，
// 导致部分端点的连接不成比例地多；设为 true 时乱序解析结果。
// 该策略由建连协作方消费，不影响本聚合器。
func (o *ContextOptions) SetShuffleConnectionEndpoints(shuffle bool) *ContextOptions {
	o.shuffleConnectionEndpoints = shuffle
	o.shuffleSet = true
	return o
}

// SetTunable 将一个 tunable 加入集合（集合语义，重复加入是空操作）。
//
// tunable 是实验特性的开关字符串，由库内部特性门消费，
// 语义随版本变化，不构成兼容性承诺。
func (o *ContextOptions) SetTunable(tunable string) *ContextOptions {
	o.tunables[tunable] = struct{}{}
	return o
}

// ThreadPool 返回注入的线程池引用，未设置时为 nil。
func (o *ContextOptions) ThreadPool() *xpool.Pool {
	return o.threadPool
}

// MetricPublisher 返回指标发布器，未设置时为空实现。
func (o *ContextOptions) MetricPublisher() xmetrics.Publisher {
	return o.metricPublisher
}

// ErrorCallback 返回错误回调，未设置时为空实现。
func (o *ContextOptions) ErrorCallback() ErrorCallback {
	return o.onError
}

// SuccessCallback 返回恢复回调，未设置时为空实现。
func (o *ContextOptions) SuccessCallback() SuccessCallback {
	return o.onSuccess
}

// HungMessageCallback 返回挂起消息回调，未设置时为空实现。
func (o *ContextOptions) HungMessageCallback() HungMessageCallback {
	return o.onHungMessage
}

// ClientProperties 返回身份表的拷贝。
// 修改返回的表不影响聚合器；写入身份键请使用 SetClientProperty。
func (o *ContextOptions) ClientProperties() FieldTable {
	return o.clientProperties.Clone()
}

// MessageProcessingTimeout 返回消息处理超时。
func (o *ContextOptions) MessageProcessingTimeout() time.Duration {
	return o.messageProcessingTimeout
}

// ConnectionErrorThreshold 返回连接错误阈值。
// ok 为 false 表示未设置（仅凭建连耗时永不升级）。
func (o *ContextOptions) ConnectionErrorThreshold() (threshold time.Duration, ok bool) {
	return o.connectionErrorThreshold, o.hasConnectionErrorThreshold
}

// Tunables 返回按字典序排序的 tunable 列表拷贝。
func (o *ContextOptions) Tunables() []string {
	return sortedKeys(o.tunables)
}

// HasTunable 报告 tunable 是否已加入集合。
func (o *ContextOptions) HasTunable(tunable string) bool {
	_, ok := o.tunables[tunable]
	return ok
}

// ConsumerTracing 返回消费侧追踪实现，未设置时为空实现。
func (o *ContextOptions) ConsumerTracing() ConsumerTracing {
	return o.consumerTracing
}

// ProducerTracing 返回生产侧追踪实现，未设置时为空实现。
func (o *ContextOptions) ProducerTracing() ProducerTracing {
	return o.producerTracing
}

// ShuffleConnectionEndpoints 返回端点乱序的三态取值：
// ok 为 false 表示未设置（实现默认顺序，即不乱序）。
func (o *ContextOptions) ShuffleConnectionEndpoints() (shuffle, ok bool) {
	return o.shuffleConnectionEndpoints, o.shuffleSet
}

// NewDefaultThreadPool 按 DefaultThreadPool* 常量创建线程池。
// 供上下文构造方在未注入线程池时使用；此时线程池由上下文拥有并随其关闭。
func NewDefaultThreadPool() (*xpool.Pool, error) {
	return xpool.New(
		DefaultThreadPoolMinWorkers,
		DefaultThreadPoolMaxWorkers,
		DefaultThreadPoolMaxIdleTime,
		xpool.WithName("rabbitx-callbacks"),
	)
}
