package xpool

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// maxWorkersLimit worker 数量上限，防止误配置导致协程爆炸。
const maxWorkersLimit = 65536

// Pool 是一个弹性 worker pool，用于异步执行回调任务。
//
// minWorkers 个常驻 worker 在创建时启动并存活到 Close；
// 队列出现积压时按需创建突发 worker（总数不超过 maxWorkers），
// 突发 worker 空闲超过 maxIdleTime 后自动退出。
type Pool struct {
	minWorkers  int
	maxWorkers  int
	maxIdleTime time.Duration
	queueSize   int
	logger      *slog.Logger
	name        string

	tasks  chan func()
	wg     sync.WaitGroup
	active atomic.Int32

	mu     sync.RWMutex
	closed bool
}

// New 创建并启动 worker pool。
//
// 参数：
//   - minWorkers: 常驻 worker 数量，范围 [1, 65536]
//   - maxWorkers: worker 总数上限，范围 [minWorkers, 65536]
//   - maxIdleTime: 突发 worker 的空闲回收时间，必须大于 0
//
// 常驻 worker 随 New 启动，无需手动 Start。
func New(minWorkers, maxWorkers int, maxIdleTime time.Duration, opts ...Option) (*Pool, error) {
	if minWorkers < 1 || minWorkers > maxWorkersLimit {
		return nil, ErrInvalidWorkers
	}
	if maxWorkers < minWorkers || maxWorkers > maxWorkersLimit {
		return nil, ErrInvalidWorkers
	}
	if maxIdleTime <= 0 {
		return nil, ErrInvalidIdleTime
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.queueSize < 1 || options.queueSize > maxQueueSize {
		return nil, ErrInvalidQueueSize
	}

	p := &Pool{
		minWorkers:  minWorkers,
		maxWorkers:  maxWorkers,
		maxIdleTime: maxIdleTime,
		queueSize:   options.queueSize,
		logger:      options.logger,
		name:        options.name,
		tasks:       make(chan func(), options.queueSize),
	}

	for i := 0; i < minWorkers; i++ {
		p.active.Add(1)
		p.wg.Add(1)
		go p.residentWorker()
	}
	return p, nil
}

// residentWorker 是常驻工作协程，存活到队列关闭。
func (p *Pool) residentWorker() {
	defer p.wg.Done()
	defer p.active.Add(-1)

	for task := range p.tasks {
		p.run(task)
	}
}

// surgeWorker 是突发工作协程，空闲超过 maxIdleTime 后退出。
func (p *Pool) surgeWorker() {
	defer p.wg.Done()
	defer p.active.Add(-1)

	idle := time.NewTimer(p.maxIdleTime)
	defer idle.Stop()

	for {
		select {
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			p.run(task)
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(p.maxIdleTime)
		case <-idle.C:
			return
		}
	}
}

// run 执行单个任务并捕获 panic。
func (p *Pool) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("xpool: task panic recovered", "pool", p.name, "panic", r)
		}
	}()
	task()
}

// Submit 提交任务到 worker pool，永不阻塞。
//
// 队列有空位时直接入队；队列已满且 worker 未达上限时扩容后重试一次；
// 仍然失败则返回 ErrQueueFull。pool 已关闭时返回 ErrPoolClosed。
func (p *Pool) Submit(task func()) error {
	if task == nil {
		return ErrNilTask
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.tasks <- task:
		p.maybeGrow()
		return nil
	default:
	}

	// 队列满：尝试扩容后重试一次
	p.maybeGrow()
	select {
	case p.tasks <- task:
		return nil
	default:
		p.logger.Warn("xpool: queue full, task rejected", "pool", p.name)
		return ErrQueueFull
	}
}

// maybeGrow 在队列有积压且 worker 未达上限时创建突发 worker。
// 调用方必须持有读锁，保证不与 Close 并发。
func (p *Pool) maybeGrow() {
	if len(p.tasks) == 0 {
		return
	}
	for {
		current := p.active.Load()
		if int(current) >= p.maxWorkers {
			return
		}
		if p.active.CompareAndSwap(current, current+1) {
			p.wg.Add(1)
			go p.surgeWorker()
			return
		}
	}
}

// Close 关闭 pool 并等待队列中所有剩余任务处理完成。
// 幂等：重复调用直接返回 nil。关闭后 Submit 返回 ErrPoolClosed。
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
	return nil
}

// MinWorkers 返回常驻 worker 数量。
func (p *Pool) MinWorkers() int {
	return p.minWorkers
}

// MaxWorkers 返回 worker 总数上限。
func (p *Pool) MaxWorkers() int {
	return p.maxWorkers
}

// MaxIdleTime 返回突发 worker 的空闲回收时间。
func (p *Pool) MaxIdleTime() time.Duration {
	return p.maxIdleTime
}

// QueueSize 返回任务队列大小。
func (p *Pool) QueueSize() int {
	return p.queueSize
}

// ActiveWorkers 返回当前存活的 worker 数量（常驻 + 突发）。
func (p *Pool) ActiveWorkers() int {
	return int(p.active.Load())
}
