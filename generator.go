package namegen

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"regexp"

	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/markov"
)

// Namer is implemented by both generator variants.
type Namer interface {
	Generate() (string, error)
	GenerateContext(ctx context.Context) (string, error)
	GenerateN(ctx context.Context, n int) ([]string, error)
	Mode() Mode
	Order() int
	Pattern() string
}

var (
	_ Namer = (*Generator[rune])(nil)
	_ Namer = (*Generator[string])(nil)
)

// Generator produces names from a trained chain. Its model, pattern and retry
// ceiling never change after Build.
type Generator[S comparable] struct {
	mode        Mode
	model       *markov.Model[S]
	pattern     *regexp.Regexp
	src         RandSource
	sentinel    S
	join        func([]S) string
	maxAttempts int
	logger      *slog.Logger
}

// NewGenerator builds a generator for mode in one step: construct the
// builder, train it on words and build.
func NewGenerator(mode Mode, words iter.Seq[string], opts ...Option) (Namer, error) {
	switch mode {
	case ModeCharacter:
		b, err := NewCharacterBuilder(opts...)
		if err != nil {
			return nil, err
		}
		g, err := b.Train(words).Build()
		if err != nil {
			return nil, err
		}
		return g, nil
	case ModeCluster:
		b, err := NewClusterBuilder(opts...)
		if err != nil {
			return nil, err
		}
		g, err := b.Train(words).Build()
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// Mode returns the symbol type of the chain.
func (g *Generator[S]) Mode() Mode { return g.mode }

// Order returns the chain order.
func (g *Generator[S]) Order() int { return g.model.Order() }

// Pattern returns the acceptance pattern, or "" when there is none.
func (g *Generator[S]) Pattern() string {
	if g.pattern == nil {
		return ""
	}
	return g.pattern.String()
}

// Generate returns one name. With a pattern it re-rolls until a candidate
// matches; without WithMaxAttempts an unsatisfiable pattern never returns.
func (g *Generator[S]) Generate() (string, error) {
	return g.GenerateContext(context.Background())
}

// GenerateContext is Generate that also stops, with ctx.Err(), once ctx is done.
func (g *Generator[S]) GenerateContext(ctx context.Context) (string, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate, err := g.walk()
		if err != nil {
			return "", err
		}

		if g.pattern == nil || g.pattern.MatchString(candidate) {
			g.logger.DebugContext(ctx, "name generated",
				logger.Mode(g.mode.String()),
				logger.Candidate(candidate),
				logger.Attempt(attempt),
			)
			return candidate, nil
		}

		g.logger.DebugContext(ctx, "candidate rejected by pattern, re-rolling",
			logger.Candidate(candidate),
			logger.Attempt(attempt),
			logger.Pattern(g.pattern.String()),
		)
		if g.maxAttempts > 0 && attempt >= g.maxAttempts {
			return "", fmt.Errorf("%w: %d candidates rejected by %q",
				ErrPatternUnsatisfiable, attempt, g.pattern.String())
		}
	}
}

// GenerateN returns n names, stopping at the first error.
func (g *Generator[S]) GenerateN(ctx context.Context, n int) ([]string, error) {
	names := make([]string, 0, max(n, 0))
	for range n {
		name, err := g.GenerateContext(ctx)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// Fork returns a generator sharing g's model and pattern but drawing from src.
// A nil src gets a fresh non-deterministic source.
func (g *Generator[S]) Fork(src RandSource) *Generator[S] {
	if src == nil {
		src = newRandomSource()
	}
	f := *g
	f.src = &lockedSource{src: src}
	return &f
}

// walk samples one sentinel-to-sentinel path and joins the symbols in between.
func (g *Generator[S]) walk() (string, error) {
	seq := []S{g.sentinel}
	for {
		next, err := g.model.RandomNext(g.src, seq)
		if err != nil {
			return "", err
		}
		if next == g.sentinel {
			return g.join(seq[1:]), nil
		}
		seq = append(seq, next)
	}
}
