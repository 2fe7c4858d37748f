package ratelimiter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// staleAfter is how long an untouched bucket is kept.
const staleAfter = time.Hour

// Config describes the bucket. A zero Capacity disables limiting in callers
// that check Enabled.
type Config struct {
	Capacity       int           `env:"NAMEGEN_RATE_CAPACITY" envDefault:"0"`
	RefillRate     int           `env:"NAMEGEN_RATE_REFILL" envDefault:"1"`
	RefillInterval time.Duration `env:"NAMEGEN_RATE_INTERVAL" envDefault:"1s"`
}

// Enabled reports whether the config asks for limiting at all.
func (c Config) Enabled() bool { return c.Capacity > 0 }

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result is the outcome of one AllowN call.
type Result struct {
	Limit     int
	Remaining int // negative when the request was denied
	ResetAt   time.Time
}

// Allowed reports whether the tokens were available.
func (r Result) Allowed() bool { return r.Remaining >= 0 }

// RetryAfter is zero for allowed requests, otherwise the time until the
// next refill.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}

// SetHeaders writes the X-RateLimit-* headers, plus Retry-After when denied.
func (r Result) SetHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(r.Limit))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(max(r.Remaining, 0)))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(r.ResetAt.Unix(), 10))
	if !r.Allowed() {
		h.Set("Retry-After", strconv.Itoa(max(int(r.RetryAfter().Seconds()), 1)))
	}
}

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// Limiter holds one bucket per key.
type Limiter struct {
	cfg Config
	now func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket

	stop chan struct{}
	once sync.Once
}

// New returns a Limiter that sweeps stale buckets in the background until
// Close is called.
func New(cfg Config) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	l := &Limiter{
		cfg:     cfg,
		now:     time.Now,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	go l.sweepLoop(staleAfter / 4)
	return l, nil
}

// Allow is AllowN with n = 1.
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	return l.AllowN(ctx, key, 1)
}

// Capacity returns the most tokens a single AllowN call can take.
func (l *Limiter) Capacity() int { return l.cfg.Capacity }

// AllowN takes n tokens from key's bucket. n above Capacity is rejected with
// ErrExceedsCapacity, since waiting would never help.
func (l *Limiter) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidCost, n)
	}
	if n > l.cfg.Capacity {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrExceedsCapacity, n, l.cfg.Capacity)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.cfg.Capacity, lastRefill: now}
		l.buckets[key] = b
	}

	// Cap the interval count so a long idle period cannot overflow.
	intervals := min(int64(now.Sub(b.lastRefill)/l.cfg.RefillInterval), int64(l.cfg.Capacity/l.cfg.RefillRate+1))
	if intervals > 0 {
		b.tokens = min(b.tokens+int(intervals)*l.cfg.RefillRate, l.cfg.Capacity)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * l.cfg.RefillInterval)
		if b.tokens == l.cfg.Capacity {
			b.lastRefill = now
		}
	}

	res := Result{Limit: l.cfg.Capacity, ResetAt: b.lastRefill.Add(l.cfg.RefillInterval)}
	if b.tokens < n {
		res.Remaining = b.tokens - n
	} else {
		b.tokens -= n
		res.Remaining = b.tokens
	}
	b.lastAccess = now
	return res, nil
}

// Reset forgets key's bucket.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	delete(l.buckets, key)
	l.mu.Unlock()
}

// Close stops the background sweep. Safe to call more than once.
func (l *Limiter) Close() {
	l.once.Do(func() { close(l.stop) })
}

func (l *Limiter) sweepLoop(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			l.sweep()
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, b := range l.buckets {
		if now.Sub(b.lastAccess) > staleAfter {
			delete(l.buckets, key)
		}
	}
}
