package xmetrics

// Tag 表示附加在指标上的一个标签。
type Tag struct {
	Key   string
	Value string
}

// String 构造一个标签。
func String(key, value string) Tag {
	return Tag{Key: key, Value: value}
}

// Publisher 定义指标发布能力接口。
// 库内各组件生成的指标统一通过该接口发布，由调用方注入具体后端实现。
//
// 实现必须是并发安全的：指标可能从回调线程池与监控协程同时发布。
type Publisher interface {
	// PublishGauge 发布瞬时值指标。
	PublishGauge(name string, value float64, tags []Tag)

	// PublishCounter 发布累计值指标。
	PublishCounter(name string, value float64, tags []Tag)

	// PublishSummary 发布取值分布摘要指标。
	PublishSummary(name string, value float64, tags []Tag)

	// PublishDistribution 发布取值分布直方图指标。
	PublishDistribution(name string, value float64, tags []Tag)
}

// NoopPublisher 是 Publisher 的空实现。
// 未配置指标后端时使用，所有发布调用直接丢弃。
type NoopPublisher struct{}

// PublishGauge 空实现，不做任何处理。
func (NoopPublisher) PublishGauge(_ string, _ float64, _ []Tag) {}

// PublishCounter 空实现，不做任何处理。
func (NoopPublisher) PublishCounter(_ string, _ float64, _ []Tag) {}

// PublishSummary 空实现，不做任何处理。
func (NoopPublisher) PublishSummary(_ string, _ float64, _ []Tag) {}

// PublishDistribution 空实现，不做任何处理。
func (NoopPublisher) PublishDistribution(_ string, _ float64, _ []Tag) {}

var _ Publisher = NoopPublisher{}

// PublishGauge 使用 publisher 发布瞬时值指标，nil publisher 时丢弃。
func PublishGauge(publisher Publisher, name string, value float64, tags []Tag) {
	if publisher == nil {
		return
	}
	publisher.PublishGauge(name, value, tags)
}

// PublishCounter 使用 publisher 发布累计值指标，nil publisher 时丢弃。
func PublishCounter(publisher Publisher, name string, value float64, tags []Tag) {
	if publisher == nil {
		return
	}
	publisher.PublishCounter(name, value, tags)
}

// PublishSummary 使用 publisher 发布摘要指标，nil publisher 时丢弃。
func PublishSummary(publisher Publisher, name string, value float64, tags []Tag) {
	if publisher == nil {
		return
	}
	publisher.PublishSummary(name, value, tags)
}

// PublishDistribution 使用 publisher 发布直方图指标，nil publisher 时丢弃。
func PublishDistribution(publisher Publisher, name string, value float64, tags []Tag) {
	if publisher == nil {
		return
	}
	publisher.PublishDistribution(name, value, tags)
}
