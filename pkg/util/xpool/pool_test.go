package xpool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestPool_Basic(t *testing.T) {
	var processed atomic.Int32
	var wg sync.WaitGroup
	wg.Add(5)

	pool, err := New(2, 4, time.Second)
	require.NoError(t, err)
	defer func() { _ = pool.Close() }()

	for i := 0; i < 5; i++ {
		err := pool.Submit(func() {
			processed.Add(1)
			wg.Done()
		})
		assert.NoError(t, err)
	}

	wg.Wait()
	assert.Equal(t, int32(5), processed.Load())
}

func TestPool_InvalidArgs(t *testing.T) {
	tests := []struct {
		name    string
		min     int
		max     int
		idle    time.Duration
		opts    []Option
		wantErr error
	}{
		{name: "min为0", min: 0, max: 1, idle: time.Second, wantErr: ErrInvalidWorkers},
		{name: "max小于min", min: 2, max: 1, idle: time.Second, wantErr: ErrInvalidWorkers},
		{name: "max超上限", min: 1, max: maxWorkersLimit + 1, idle: time.Second, wantErr: ErrInvalidWorkers},
		{name: "idle为0", min: 1, max: 1, idle: 0, wantErr: ErrInvalidIdleTime},
		{name: "队列大小为0", min: 1, max: 1, idle: time.Second, opts: []Option{WithQueueSize(0)}, wantErr: ErrInvalidQueueSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.min, tt.max, tt.idle, tt.opts...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPool_QueueFull(t *testing.T) {
	block := make(chan struct{})
	pool, err := New(1, 1, time.Second, WithQueueSize(1))
	require.NoError(t, err)

	// 占住唯一的 worker
	require.NoError(t, pool.Submit(func() { <-block }))

	// 填满队列后继续提交应返回 ErrQueueFull
	var full bool
	for i := 0; i < 10; i++ {
		if err := pool.Submit(func() {}); err != nil {
			assert.ErrorIs(t, err, ErrQueueFull)
			full = true
			break
		}
	}
	assert.True(t, full)

	close(block)
	require.NoError(t, pool.Close())
}

func TestPool_SurgeWorkers(t *testing.T) {
	defer goleak.VerifyNone(t)

	block := make(chan struct{})
	pool, err := New(1, 4, 50*time.Millisecond, WithQueueSize(2))
	require.NoError(t, err)

	// 阻塞式任务制造积压，触发突发 worker 扩容
	for i := 0; i < 6; i++ {
		_ = pool.Submit(func() { <-block })
	}
	assert.Greater(t, pool.ActiveWorkers(), 1)
	assert.LessOrEqual(t, pool.ActiveWorkers(), 4)

	close(block)

	// 突发 worker 空闲超时后回收，只剩常驻 worker
	assert.Eventually(t, func() bool {
		return pool.ActiveWorkers() == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, pool.Close())
}

func TestPool_CloseDrainsQueue(t *testing.T) {
	var processed atomic.Int32

	pool, err := New(1, 1, time.Second, WithQueueSize(10))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		_ = pool.Submit(func() {
			time.Sleep(time.Millisecond)
			processed.Add(1)
		})
	}

	// Close 应等待队列中的剩余任务处理完成
	require.NoError(t, pool.Close())
	assert.Equal(t, int32(10), processed.Load())
}

func TestPool_SubmitAfterClose(t *testing.T) {
	pool, err := New(1, 1, time.Second)
	require.NoError(t, err)
	require.NoError(t, pool.Close())

	assert.ErrorIs(t, pool.Submit(func() {}), ErrPoolClosed)

	// 多次 Close 应该是安全的
	assert.NoError(t, pool.Close())
}

func TestPool_NilTask(t *testing.T) {
	pool, err := New(1, 1, time.Second)
	require.NoError(t, err)
	defer func() { _ = pool.Close() }()

	assert.ErrorIs(t, pool.Submit(nil), ErrNilTask)
}

func TestPool_PanicRecovery(t *testing.T) {
	var processed atomic.Int32
	var wg sync.WaitGroup
	wg.Add(3)

	pool, err := New(1, 1, time.Second)
	require.NoError(t, err)
	defer func() { _ = pool.Close() }()

	_ = pool.Submit(func() { defer wg.Done(); processed.Add(1) })
	_ = pool.Submit(func() { defer wg.Done(); panic("test panic") })
	_ = pool.Submit(func() { defer wg.Done(); processed.Add(1) })

	wg.Wait()
	// panic 的任务被丢弃，后续任务不受影响
	assert.Equal(t, int32(2), processed.Load())
}

func TestPool_Accessors(t *testing.T) {
	pool, err := New(2, 8, 30*time.Second, WithQueueSize(64), WithName("callbacks"))
	require.NoError(t, err)
	defer func() { _ = pool.Close() }()

	assert.Equal(t, 2, pool.MinWorkers())
	assert.Equal(t, 8, pool.MaxWorkers())
	assert.Equal(t, 30*time.Second, pool.MaxIdleTime())
	assert.Equal(t, 64, pool.QueueSize())
	assert.Equal(t, 2, pool.ActiveWorkers())
}
