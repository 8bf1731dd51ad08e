package robust

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestLazyCell_Once(t *testing.T) {
	var c lazyCell[int]
	var calls int

	initFn := func() (int, error) {
		calls++
		return 42, nil
	}

	v, created, err := c.get(initFn)
	if err != nil || v != 42 || !created {
		t.Fatalf("first get() = %d, %v, %v, want 42, true, nil", v, created, err)
	}
	v, created, err = c.get(initFn)
	if err != nil || v != 42 || created {
		t.Fatalf("second get() = %d, %v, %v, want 42, false, nil", v, created, err)
	}
	if calls != 1 {
		t.Errorf("init called %d times, want 1", calls)
	}
	if !c.loaded() {
		t.Error("loaded() = false after a successful get")
	}
}

func TestLazyCell_FailureNotStored(t *testing.T) {
	var c lazyCell[string]
	boom := errors.New("boom")

	if _, _, err := c.get(func() (string, error) { return "partial", boom }); !errors.Is(err, boom) {
		t.Fatalf("get() error = %v, want %v", err, boom)
	}
	if c.loaded() {
		t.Fatal("loaded() = true after a failed init")
	}

	v, created, err := c.get(func() (string, error) { return "ok", nil })
	if err != nil || v != "ok" || !created {
		t.Errorf("retry get() = %q, %v, %v, want ok, true, nil", v, created, err)
	}
}

func TestLazyCell_Concurrent(t *testing.T) {
	var c lazyCell[*int]
	var calls, creators atomic.Int32

	const goroutines = 64
	results := make([]*int, goroutines)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			v, created, err := c.get(func() (*int, error) {
				calls.Add(1)
				n := 7
				return &n, nil
			})
			if err != nil {
				t.Errorf("get() error = %v", err)
			}
			if created {
				creators.Add(1)
			}
			results[i] = v
		}()
	}
	close(start)
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("init called %d times, want 1", n)
	}
	if n := creators.Load(); n != 1 {
		t.Errorf("%d callers reported created, want 1", n)
	}
	for i, r := range results {
		if r != results[0] {
			t.Fatalf("result %d differs from result 0", i)
		}
	}
}
