package xpool

import "errors"

var (
	// ErrNilTask 表示提交的任务为 nil。
	ErrNilTask = errors.New("xpool: nil task")

	// ErrPoolClosed 表示 pool 已关闭，无法提交任务。
	ErrPoolClosed = errors.New("xpool: pool is closed")

	// ErrQueueFull 表示任务队列已满。
	ErrQueueFull = errors.New("xpool: queue is full")

	// ErrInvalidWorkers 表示 worker 数量无效。
	ErrInvalidWorkers = errors.New("xpool: invalid worker count")

	// ErrInvalidQueueSize 表示队列大小无效。
	ErrInvalidQueueSize = errors.New("xpool: invalid queue size")

	// ErrInvalidIdleTime 表示空闲超时无效。
	ErrInvalidIdleTime = errors.New("xpool: invalid idle time")
)
