package namegen

import (
	"errors"
	"iter"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/namegen/pkg/markov"
)

// Builder accumulates training data for a chain over symbols of type S and
// builds Generators from it. Use NewCharacterBuilder or NewClusterBuilder.
type Builder[S comparable] struct {
	mode       Mode
	opts       *options
	trainer    *markov.Trainer[S]
	sentinel   S
	preprocess func(iter.Seq[string]) iter.Seq[[]S]
	join       func([]S) string
}

// NewCharacterBuilder returns a builder that chains individual characters.
// The default prior is DefaultCharacterPrior.
func NewCharacterBuilder(opts ...Option) (*Builder[rune], error) {
	o, err := newOptions(DefaultCharacterPrior, opts)
	if err != nil {
		return nil, err
	}
	return newBuilder(ModeCharacter, o, CharacterSentinel, CharacterSequences, func(s []rune) string {
		return string(s)
	})
}

// NewClusterBuilder returns a builder that chains vowel and consonant clusters.
// The default prior is DefaultClusterPrior.
func NewClusterBuilder(opts ...Option) (*Builder[string], error) {
	o, err := newOptions(DefaultClusterPrior, opts)
	if err != nil {
		return nil, err
	}
	isVowel := o.isVowel
	preprocess := func(words iter.Seq[string]) iter.Seq[[]string] {
		return ClusterSequences(words, isVowel)
	}
	return newBuilder(ModeCluster, o, ClusterSentinel, preprocess, func(s []string) string {
		return strings.Join(s, "")
	})
}

func newBuilder[S comparable](
	mode Mode,
	o *options,
	sentinel S,
	preprocess func(iter.Seq[string]) iter.Seq[[]S],
	join func([]S) string,
) (*Builder[S], error) {
	prior := markov.WithoutPrior()
	if o.hasPrior {
		prior = markov.WithPrior(o.prior)
	}
	trainer, err := markov.NewTrainer[S](o.order, prior)
	if err != nil {
		return nil, err
	}
	return &Builder[S]{
		mode:       mode,
		opts:       o,
		trainer:    trainer,
		sentinel:   sentinel,
		preprocess: preprocess,
		join:       join,
	}, nil
}

// Mode returns the symbol type the builder chains.
func (b *Builder[S]) Mode() Mode { return b.mode }

// Order returns the configured chain order.
func (b *Builder[S]) Order() int { return b.opts.order }

// Train normalises, segments and accumulates words into the chain. Calls are
// cumulative. It returns b for chaining.
func (b *Builder[S]) Train(words iter.Seq[string]) *Builder[S] {
	b.trainer.Train(b.preprocess(words))
	return b
}

// TrainStrings is Train over a list of words.
func (b *Builder[S]) TrainStrings(words ...string) *Builder[S] {
	return b.Train(slices.Values(words))
}

// Build snapshots the trained chain and compiles the acceptance pattern. The
// returned Generator is unaffected by later training on b and owns a random
// source of its own.
func (b *Builder[S]) Build() (*Generator[S], error) {
	var pattern *regexp.Regexp
	if b.opts.pattern != "" {
		re, err := regexp.Compile(b.opts.pattern)
		if err != nil {
			return nil, errors.Join(ErrInvalidPattern, err)
		}
		pattern = re
	}

	src, err := b.opts.newSource()
	if err != nil {
		return nil, err
	}

	return &Generator[S]{
		mode:        b.mode,
		model:       b.trainer.Build(),
		pattern:     pattern,
		src:         &lockedSource{src: src},
		sentinel:    b.sentinel,
		join:        b.join,
		maxAttempts: b.opts.maxAttempts,
		logger:      b.opts.logger,
	}, nil
}
