package game

import (
	"sync"
	"time"
)

// Clock 周期回调的调度器
// Every 启动一个周期回调，返回的 stop 函数可重复调用；stop 返回后不会再有新的回调开始
type Clock interface {
	Every(interval time.Duration, fn func()) (stop func())
}

// RealClock 基于 time.Ticker 的调度器，每个订阅一个 goroutine
type RealClock struct{}

// Every 实现 Clock 接口
//
// stop 不等待 goroutine 退出：回调可能正持有调用方的锁，等待会造成死锁。
// 调用方需要自行丢弃 stop 之后才到达的过期回调（GameSession 通过会话ID判断）。
func (RealClock) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
	}
}

// ManualClock 手动触发的调度器，用于测试和无界面验证工具
type ManualClock struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

// NewManualClock 创建手动调度器
func NewManualClock() *ManualClock {
	return &ManualClock{subs: make(map[int]func())}
}

// Every 实现 Clock 接口，interval 被忽略
func (c *ManualClock) Every(_ time.Duration, fn func()) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Advance 触发 n 次所有活跃订阅
func (c *ManualClock) Advance(n int) {
	for i := 0; i < n; i++ {
		c.mu.Lock()
		fns := make([]func(), 0, len(c.subs))
		for _, fn := range c.subs {
			fns = append(fns, fn)
		}
		c.mu.Unlock()

		for _, fn := range fns {
			fn()
		}
	}
}

// Active 返回当前活跃订阅数
func (c *ManualClock) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}
