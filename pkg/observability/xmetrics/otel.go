package xmetrics

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const defaultInstrumentationName = "github.com/omeyang/rabbitx/xmetrics"

type otelConfig struct {
	instrumentationName string
	meterProvider       metric.MeterProvider
	logger              *slog.Logger
}

// Option 定义 OTelPublisher 的配置选项。
type Option func(*otelConfig)

// WithInstrumentationName 设置 OTel instrumentation 名称。
func WithInstrumentationName(name string) Option {
	return func(cfg *otelConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithMeterProvider 设置 MeterProvider。
// 默认使用全局 otel.GetMeterProvider()。传入 nil 将被忽略。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// WithLogger 设置日志记录器，用于记录 instrument 创建失败。
// 默认使用 slog.Default()。传入 nil 将被忽略。
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *otelConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// NewOTelPublisher 创建基于 OpenTelemetry Metrics 的 Publisher。
func NewOTelPublisher(opts ...Option) *OTelPublisher {
	cfg := &otelConfig{
		instrumentationName: defaultInstrumentationName,
		meterProvider:       otel.GetMeterProvider(),
		logger:              slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &OTelPublisher{
		meter:      cfg.meterProvider.Meter(cfg.instrumentationName),
		logger:     cfg.logger,
		gauges:     map[string]metric.Float64Gauge{},
		counters:   map[string]metric.Float64Counter{},
		histograms: map[string]metric.Float64Histogram{},
	}
}

// OTelPublisher 是基于 OpenTelemetry Metrics 的 Publisher 实现。
//
// Instrument 按指标名惰性创建并缓存。创建失败的指标名只记录一次日志，
// 后续发布调用直接丢弃，避免日志风暴。
type OTelPublisher struct {
	meter  metric.Meter
	logger *slog.Logger

	mu         sync.Mutex
	gauges     map[string]metric.Float64Gauge
	counters   map[string]metric.Float64Counter
	histograms map[string]metric.Float64Histogram
}

// PublishGauge 发布瞬时值指标。
func (p *OTelPublisher) PublishGauge(name string, value float64, tags []Tag) {
	gauge, ok := p.gauge(name)
	if !ok {
		return
	}
	gauge.Record(context.Background(), value, metric.WithAttributes(tagsToAttrs(tags)...))
}

// PublishCounter 发布累计值指标。
func (p *OTelPublisher) PublishCounter(name string, value float64, tags []Tag) {
	counter, ok := p.counter(name)
	if !ok {
		return
	}
	counter.Add(context.Background(), value, metric.WithAttributes(tagsToAttrs(tags)...))
}

// PublishSummary 发布摘要指标，映射为 OTel Histogram。
func (p *OTelPublisher) PublishSummary(name string, value float64, tags []Tag) {
	p.recordHistogram(name, value, tags)
}

// PublishDistribution 发布直方图指标。
func (p *OTelPublisher) PublishDistribution(name string, value float64, tags []Tag) {
	p.recordHistogram(name, value, tags)
}

func (p *OTelPublisher) recordHistogram(name string, value float64, tags []Tag) {
	histogram, ok := p.histogram(name)
	if !ok {
		return
	}
	histogram.Record(context.Background(), value, metric.WithAttributes(tagsToAttrs(tags)...))
}

func (p *OTelPublisher) gauge(name string) (metric.Float64Gauge, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	gauge, cached := p.gauges[name]
	if !cached {
		var err error
		gauge, err = p.meter.Float64Gauge(name)
		if err != nil {
			p.logger.Warn("xmetrics: create gauge failed", "name", name, "error", err)
		}
		// 失败时缓存 nil，后续调用静默丢弃
		p.gauges[name] = gauge
	}
	return gauge, gauge != nil
}

func (p *OTelPublisher) counter(name string) (metric.Float64Counter, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	counter, cached := p.counters[name]
	if !cached {
		var err error
		counter, err = p.meter.Float64Counter(name)
		if err != nil {
			p.logger.Warn("xmetrics: create counter failed", "name", name, "error", err)
		}
		p.counters[name] = counter
	}
	return counter, counter != nil
}

func (p *OTelPublisher) histogram(name string) (metric.Float64Histogram, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	histogram, cached := p.histograms[name]
	if !cached {
		var err error
		histogram, err = p.meter.Float64Histogram(name)
		if err != nil {
			p.logger.Warn("xmetrics: create histogram failed", "name", name, "error", err)
		}
		p.histograms[name] = histogram
	}
	return histogram, histogram != nil
}

func tagsToAttrs(tags []Tag) []attribute.KeyValue {
	if len(tags) == 0 {
		return nil
	}
	attrs := make([]attribute.KeyValue, 0, len(tags))
	for _, tag := range tags {
		if tag.Key == "" {
			continue
		}
		attrs = append(attrs, attribute.String(tag.Key, tag.Value))
	}
	return attrs
}

var _ Publisher = (*OTelPublisher)(nil)
