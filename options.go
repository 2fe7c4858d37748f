package namegen

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/markov"
)

const (
	// DefaultOrder is the chain order used when WithOrder is not given.
	DefaultOrder = 3
	// DefaultCharacterPrior is the prior of character builders.
	DefaultCharacterPrior = 0.005
	// DefaultClusterPrior is the prior of cluster builders. There are many more
	// distinct clusters than letters, so the prior is smaller.
	DefaultClusterPrior = 0.001
)

// RandSource supplies uniformly distributed numbers in [0, 1).
// *math/rand.Rand and *math/rand/v2.Rand satisfy it.
type RandSource = markov.Source

// Option configures a builder. Options are applied, and their values
// validated, by NewCharacterBuilder and NewClusterBuilder.
type Option func(*options) error

type options struct {
	order       int
	prior       float64
	hasPrior    bool
	pattern     string
	newSource   func() (RandSource, error)
	isVowel     VowelClassifier
	maxAttempts int
	logger      *slog.Logger
}

func newOptions(defaultPrior float64, opts []Option) (*options, error) {
	o := &options{
		order:    DefaultOrder,
		prior:    defaultPrior,
		hasPrior: true,
		isVowel:  IsRomanceVowel,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	if o.newSource == nil {
		o.newSource = func() (RandSource, error) { return newRandomSource(), nil }
	}
	if o.logger == nil {
		o.logger = logger.Discard()
	}
	return o, nil
}

// WithOrder sets the number of preceding symbols used as context.
// Values from 1 to 3 work best: higher orders copy the training data more
// closely and use more memory.
func WithOrder(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return ErrInvalidOrder
		}
		o.order = n
		return nil
	}
}

// WithPrior sets the additive smoothing weight. Each observed transition
// weighs 1.0 per occurrence, so a prior of 0.1 makes an unobserved transition
// as likely as one seen a tenth of a time. Small values (0.001 to 0.01) are
// recommended.
func WithPrior(p float64) Option {
	return func(o *options) error {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return ErrInvalidPrior
		}
		o.prior = p
		o.hasPrior = true
		return nil
	}
}

// WithoutPrior disables smoothing: only transitions seen in training occur.
func WithoutPrior() Option {
	return func(o *options) error {
		o.prior = 0
		o.hasPrior = false
		return nil
	}
}

// WithPattern sets the acceptance pattern. It is compiled by Build, which
// reports ErrInvalidPattern for bad syntax. Generated names are lowercase, so
// patterns should not require upper-case letters.
func WithPattern(expr string) Option {
	return func(o *options) error {
		o.pattern = expr
		return nil
	}
}

// WithRandSource hands src to the next generator built. A source belongs to
// one generator only: a second Build fails with ErrRandSourceReused. Use
// WithRandSourceFunc or WithSeed to build several generators.
func WithRandSource(src RandSource) Option {
	var claimed atomic.Bool
	return func(o *options) error {
		if src == nil {
			return ErrNilRandSource
		}
		o.newSource = func() (RandSource, error) {
			if !claimed.CompareAndSwap(false, true) {
				return nil, ErrRandSourceReused
			}
			return src, nil
		}
		return nil
	}
}

// WithRandSourceFunc calls fn once per Build for the generator's source.
func WithRandSourceFunc(fn func() RandSource) Option {
	return func(o *options) error {
		if fn == nil {
			return ErrNilRandSource
		}
		o.newSource = func() (RandSource, error) {
			src := fn()
			if src == nil {
				return nil, ErrNilRandSource
			}
			return src, nil
		}
		return nil
	}
}

// WithSeed gives every built generator its own PCG source seeded with seed,
// so generators built from one builder replay the same sequence.
func WithSeed(seed uint64) Option {
	return WithRandSourceFunc(func() RandSource { return newSeededSource(seed) })
}

// WithVowelClassifier replaces IsRomanceVowel for cluster segmentation.
// Character builders ignore it. Nil restores the default.
func WithVowelClassifier(fn VowelClassifier) Option {
	return func(o *options) error {
		if fn == nil {
			fn = IsRomanceVowel
		}
		o.isVowel = fn
		return nil
	}
}

// WithMaxAttempts caps how many candidates one Generate call may reject
// before giving up with ErrPatternUnsatisfiable. Zero means no cap.
func WithMaxAttempts(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return ErrInvalidMaxAttempts
		}
		o.maxAttempts = n
		return nil
	}
}

// WithLogger sets the logger used for generation diagnostics (debug level).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		o.logger = l
		return nil
	}
}

func newRandomSource() RandSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func newSeededSource(seed uint64) RandSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// lockedSource serialises draws so one generator can be used from many goroutines.
type lockedSource struct {
	mu  sync.Mutex
	src RandSource
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}
