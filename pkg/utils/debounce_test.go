package utils

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDebounceCollapsesBurst(t *testing.T) {
	calls := make(chan int, 10)
	debounced := Debounce(50*time.Millisecond, func(n int) {
		calls <- n
	})

	for i := 1; i <= 5; i++ {
		debounced(i)
	}

	select {
	case got := <-calls:
		if got != 5 {
			t.Errorf("debounced call got argument %d, want 5 (last call)", got)
		}
	case <-time.After(time.Second):
		t.Fatal("debounced function was never called")
	}

	select {
	case extra := <-calls:
		t.Errorf("unexpected extra call with %d", extra)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestDebounceSeparateWindows(t *testing.T) {
	var count atomic.Int32
	var wg sync.WaitGroup
	wg.Add(2)

	d := NewDebouncer(20*time.Millisecond, func(string) {
		count.Add(1)
		wg.Done()
	})

	d.Call("first")
	time.Sleep(100 * time.Millisecond)
	d.Call("second")

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected two calls for two separated windows")
	}
	if got := count.Load(); got != 2 {
		t.Errorf("call count = %d, want 2", got)
	}
}

func TestDebouncerStop(t *testing.T) {
	var count atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func(int) {
		count.Add(1)
	})

	if d.Stop() {
		t.Error("Stop with nothing pending should return false")
	}

	d.Call(1)
	if !d.Pending() {
		t.Fatal("call should be pending")
	}
	if !d.Stop() {
		t.Error("Stop should cancel the pending call")
	}

	time.Sleep(80 * time.Millisecond)
	if got := count.Load(); got != 0 {
		t.Errorf("stopped debouncer still fired %d times", got)
	}
}

func TestDebouncerFlush(t *testing.T) {
	var got []int
	d := NewDebouncer(time.Hour, func(n int) {
		got = append(got, n)
	})

	d.Call(1)
	d.Call(2)
	if !d.Flush() {
		t.Fatal("Flush should run the pending call")
	}
	if d.Flush() {
		t.Error("second Flush should have nothing to run")
	}
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("flushed calls = %v, want [2]", got)
	}
	if d.Pending() {
		t.Error("nothing should be pending after Flush")
	}
}

func TestDebounceConcurrentCallers(t *testing.T) {
	var count atomic.Int32
	fired := make(chan struct{}, 1)
	d := NewDebouncer(50*time.Millisecond, func(int) {
		count.Add(1)
		fired <- struct{}{}
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			d.Call(n)
		}(i)
	}
	wg.Wait()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("debounced function was never called")
	}
	time.Sleep(100 * time.Millisecond)
	if got := count.Load(); got != 1 {
		t.Errorf("call count = %d, want 1", got)
	}
}
