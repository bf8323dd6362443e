package utils

import (
	"sync"
	"time"
)

// Debouncer 防抖器
//
// 在等待窗口内的多次调用合并为一次尾部调用，使用最后一次调用的参数。
// 每次调用都会重新开始计时。可以被多个 goroutine 并发调用。
type Debouncer[T any] struct {
	mu         sync.Mutex
	wait       time.Duration
	fn         func(T)
	timer      *time.Timer
	pending    T
	hasPending bool
	generation uint64
}

// NewDebouncer 创建防抖器
//
// 参数：
//   - wait: 等待窗口，窗口内无新调用时才执行
//   - fn: 被包装的函数，在独立 goroutine 中执行
func NewDebouncer[T any](wait time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		wait: wait,
		fn:   fn,
	}
}

// Debounce 返回防抖后的函数，等价于 NewDebouncer(wait, fn).Call
func Debounce[T any](wait time.Duration, fn func(T)) func(T) {
	return NewDebouncer(wait, fn).Call
}

// Call 记录参数并重新开始计时
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = arg
	d.hasPending = true
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
	}

	gen := d.generation
	d.timer = time.AfterFunc(d.wait, func() {
		d.fire(gen)
	})
}

// Flush 立即执行挂起的调用（如果有）
//
// 返回：
//   - bool: 是否执行了挂起的调用
func (d *Debouncer[T]) Flush() bool {
	arg, ok := d.take(0, false)
	if ok {
		d.fn(arg)
	}
	return ok
}

// Stop 取消挂起的调用
//
// 返回：
//   - bool: 是否有调用被取消
func (d *Debouncer[T]) Stop() bool {
	_, ok := d.take(0, false)
	return ok
}

// Pending 报告是否有等待执行的调用
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hasPending
}

func (d *Debouncer[T]) fire(gen uint64) {
	arg, ok := d.take(gen, true)
	if ok {
		d.fn(arg)
	}
}

// take 取出挂起的参数并清空状态
// checkGen 为 true 时，只有计时器代数匹配才取出，过期的计时器回调直接忽略
func (d *Debouncer[T]) take(gen uint64, checkGen bool) (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero T
	if !d.hasPending || (checkGen && gen != d.generation) {
		return zero, false
	}

	arg := d.pending
	d.pending = zero
	d.hasPending = false
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return arg, true
}
