package namegen

import "iter"

// Config is the declarative form of the builder options, suitable for
// loading from the environment (pkg/config) or from YAML (pkg/profile).
// Zero values mean "use the default".
type Config struct {
	Mode        string   `env:"NAMEGEN_MODE" envDefault:"character" yaml:"mode"`
	Order       int      `env:"NAMEGEN_ORDER" yaml:"order"`
	Prior       *float64 `env:"NAMEGEN_PRIOR" yaml:"prior"`
	NoPrior     bool     `env:"NAMEGEN_NO_PRIOR" yaml:"no_prior"`
	Pattern     string   `env:"NAMEGEN_PATTERN" yaml:"pattern"`
	Seed        uint64   `env:"NAMEGEN_SEED" yaml:"seed"`
	MaxAttempts int      `env:"NAMEGEN_MAX_ATTEMPTS" yaml:"max_attempts"`
	ExtraVowels string   `env:"NAMEGEN_EXTRA_VOWELS" yaml:"extra_vowels"`
}

// Options converts c into builder options. Order 0 keeps DefaultOrder, a
// nil Prior keeps the mode's default prior and Seed 0 keeps a
// non-deterministic source. NoPrior wins over Prior.
func (c Config) Options() []Option {
	var opts []Option
	if c.Order != 0 {
		opts = append(opts, WithOrder(c.Order))
	}
	switch {
	case c.NoPrior:
		opts = append(opts, WithoutPrior())
	case c.Prior != nil:
		opts = append(opts, WithPrior(*c.Prior))
	}
	if c.Pattern != "" {
		opts = append(opts, WithPattern(c.Pattern))
	}
	if c.Seed != 0 {
		opts = append(opts, WithSeed(c.Seed))
	}
	if c.MaxAttempts != 0 {
		opts = append(opts, WithMaxAttempts(c.MaxAttempts))
	}
	if c.ExtraVowels != "" {
		opts = append(opts, WithVowelClassifier(VowelsIncluding(c.ExtraVowels)))
	}
	return opts
}

// NewFromConfig builds a generator from c trained on words. Extra options are
// applied after the ones derived from c.
func NewFromConfig(c Config, words iter.Seq[string], opts ...Option) (Namer, error) {
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	return NewGenerator(mode, words, append(c.Options(), opts...)...)
}
