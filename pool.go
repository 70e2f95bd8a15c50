package docforge

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps browser instances to limit memory (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// ServicePool manages a pool of Service instances for concurrent request
// handling. Each service has its own browser instance, enabling true
// parallelism. Services are created lazily on first acquire to avoid
// startup delay.
type ServicePool struct {
	size     int
	opts     []Option
	services []*Service
	sem      chan *Service
	mu       sync.Mutex
	created  int
	closed   bool
}

// NewServicePool creates a pool with capacity for n Service instances, each
// constructed with the given options. Services are created lazily when
// acquired, not at pool creation.
func NewServicePool(n int, opts ...Option) *ServicePool {
	if n < 1 {
		n = 1
	}

	return &ServicePool{
		size: n,
		opts: opts,
		sem:  make(chan *Service, n),
	}
}

// Acquire gets a service from the pool, creating one if needed.
// Blocks if all services are in use. Returns ErrPoolClosed once the pool
// has been closed.
func (p *ServicePool) Acquire() (*Service, error) {
	// Try to get an existing service (non-blocking)
	select {
	case svc := <-p.sem:
		// A nil receive means Close closed the channel.
		if svc == nil {
			return nil, ErrPoolClosed
		}
		return svc, nil
	default:
	}

	// Check if we can create a new service
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create new service outside the lock
		svc, err := New(p.opts...)
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}

		p.mu.Lock()
		p.services = append(p.services, svc)
		p.mu.Unlock()

		return svc, nil
	}
	p.mu.Unlock()

	// All services created, wait for one to be released
	svc := <-p.sem
	if svc == nil {
		return nil, ErrPoolClosed
	}
	return svc, nil
}

// Release returns a service to the pool. The send happens under the mutex
// so it cannot race a concurrent Close; it never blocks because the channel
// has capacity for every created service.
func (p *ServicePool) Release(svc *Service) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.sem <- svc
}

// Convert acquires a service, runs the markdown pipeline, and releases it.
func (p *ServicePool) Convert(ctx context.Context, input ConversionInput) ([]byte, error) {
	svc, err := p.Acquire()
	if err != nil {
		return nil, err
	}
	defer p.Release(svc)

	return svc.Convert(ctx, input)
}

// IssueCertificate acquires a service, issues the certificate, and
// releases it.
func (p *ServicePool) IssueCertificate(ctx context.Context, input CertificateInput) ([]byte, string, error) {
	svc, err := p.Acquire()
	if err != nil {
		return nil, "", err
	}
	defer p.Release(svc)

	return svc.IssueCertificate(ctx, input)
}

// Close releases all browser resources.
// Returns an aggregated error if multiple services fail to close.
func (p *ServicePool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	services := p.services
	p.mu.Unlock()

	var errs []error
	for _, svc := range services {
		if err := svc.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *ServicePool) Size() int {
	return p.size
}

// ResolvePoolSize determines the pool size.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs in
	// containers)
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
