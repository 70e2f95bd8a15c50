package docforge

import (
	"errors"
	"runtime"
	"sync"
	"testing"
)

func TestNewServicePool_ClampsSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero becomes one", 0, 1},
		{"negative becomes one", -5, 1},
		{"positive kept", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewServicePool(tt.n)
			defer p.Close()
			if got := p.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestServicePool_AcquireRelease(t *testing.T) {
	t.Parallel()

	p := NewServicePool(2)
	defer p.Close()

	first, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if first == nil {
		t.Fatal("Acquire() returned nil service")
	}

	p.Release(first)

	// Released instance is reused.
	second, err := p.Acquire()
	if err != nil {
		t.Fatalf("second Acquire() error = %v", err)
	}
	if second != first {
		t.Error("expected released service to be reused")
	}
	p.Release(second)
}

func TestServicePool_LazyCreation(t *testing.T) {
	t.Parallel()

	p := NewServicePool(4)
	defer p.Close()

	p.mu.Lock()
	created := p.created
	p.mu.Unlock()

	if created != 0 {
		t.Errorf("created = %d before first Acquire, want 0", created)
	}
}

func TestServicePool_CloseIdempotent(t *testing.T) {
	t.Parallel()

	p := NewServicePool(1)
	if err := p.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}

func TestServicePool_ReleaseAfterClose(t *testing.T) {
	t.Parallel()

	p := NewServicePool(1)
	svc, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Must not panic on the closed channel.
	p.Release(svc)
}

func TestServicePool_AcquireAfterClose(t *testing.T) {
	t.Parallel()

	p := NewServicePool(1)
	svc, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	_ = svc
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// All slots created and none available: Acquire drains the closed
	// channel and must report the closed pool, not hand back nil.
	if _, err := p.Acquire(); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Acquire() after Close error = %v, want ErrPoolClosed", err)
	}
}

func TestServicePool_ConcurrentReleaseAndClose(t *testing.T) {
	t.Parallel()

	// Hammer Release against Close; a send on the closed semaphore would
	// panic and fail the test.
	for i := 0; i < 50; i++ {
		p := NewServicePool(1)
		svc, err := p.Acquire()
		if err != nil {
			t.Fatalf("Acquire() error = %v", err)
		}

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			p.Release(svc)
		}()
		go func() {
			defer wg.Done()
			_ = p.Close()
		}()
		wg.Wait()
	}
}

func TestServicePool_PropagatesBadOptions(t *testing.T) {
	t.Parallel()

	p := NewServicePool(1, WithCertificateTheme("bogus"))
	defer p.Close()

	if _, err := p.Acquire(); err == nil {
		t.Error("expected Acquire to surface service construction error")
	}

	// Failed creation frees the slot for a retry.
	p.mu.Lock()
	created := p.created
	p.mu.Unlock()
	if created != 0 {
		t.Errorf("created = %d after failed Acquire, want 0", created)
	}
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	if got := ResolvePoolSize(3); got != 3 {
		t.Errorf("explicit workers: got %d, want 3", got)
	}

	got := ResolvePoolSize(0)
	if got < MinPoolSize || got > MaxPoolSize {
		t.Errorf("auto size %d outside [%d, %d]", got, MinPoolSize, MaxPoolSize)
	}

	want := runtime.GOMAXPROCS(0) / cpuDivisor
	if want < MinPoolSize {
		want = MinPoolSize
	}
	if want > MaxPoolSize {
		want = MaxPoolSize
	}
	if got != want {
		t.Errorf("auto size = %d, want %d", got, want)
	}
}
