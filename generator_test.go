package namegen_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"regexp"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen"
	"github.com/dmitrymomot/namegen/pkg/logger"
)

func characterGen(t *testing.T, opts ...namegen.Option) *namegen.Generator[rune] {
	t.Helper()
	b, err := namegen.NewCharacterBuilder(opts...)
	require.NoError(t, err)
	gen, err := b.TrainStrings(romans...).Build()
	require.NoError(t, err)
	return gen
}

func clusterGen(t *testing.T, opts ...namegen.Option) *namegen.Generator[string] {
	t.Helper()
	b, err := namegen.NewClusterBuilder(opts...)
	require.NoError(t, err)
	gen, err := b.TrainStrings(romans...).Build()
	require.NoError(t, err)
	return gen
}

func TestGenerator_WithoutPatternTerminates(t *testing.T) {
	t.Parallel()

	alphabet := alphabetOf([]string{strings.ToLower(strings.Join(romans, ""))})
	gens := map[string]namegen.Namer{
		"character":          characterGen(t, namegen.WithSeed(1)),
		"cluster":            clusterGen(t, namegen.WithSeed(1)),
		"character no prior": characterGen(t, namegen.WithSeed(1), namegen.WithoutPrior()),
		"cluster order 1":    clusterGen(t, namegen.WithSeed(1), namegen.WithOrder(1)),
	}
	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			for range 300 {
				out, err := gen.Generate()
				require.NoError(t, err)
				assert.NotContains(t, out, "#")
				for _, r := range out {
					assert.True(t, alphabet[r], "%q uses %q which is not in the training data", out, r)
				}
			}
		})
	}
}

func TestGenerator_PatternConformance(t *testing.T) {
	t.Parallel()

	const expr = `^[a-z]{4,8}$`
	re := regexp.MustCompile(expr)

	gens := map[string]namegen.Namer{
		"character": characterGen(t, namegen.WithSeed(2), namegen.WithPattern(expr)),
		"cluster":   clusterGen(t, namegen.WithSeed(2), namegen.WithPattern(expr)),
		"feminine":  characterGen(t, namegen.WithSeed(2), namegen.WithPattern(`^[a-z]*a$`)),
	}
	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			names, err := gen.GenerateN(context.Background(), 200)
			require.NoError(t, err)
			require.Len(t, names, 200)
			for _, n := range names {
				if name == "feminine" {
					assert.True(t, strings.HasSuffix(n, "a"), "%q", n)
					continue
				}
				assert.Regexp(t, re, n)
			}
		})
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	t.Parallel()

	for _, mode := range []namegen.Mode{namegen.ModeCharacter, namegen.ModeCluster} {
		t.Run(mode.String(), func(t *testing.T) {
			a, err := namegen.NewGenerator(mode, slices.Values(romans), namegen.WithSeed(123), namegen.WithPattern(`^.{3,}$`))
			require.NoError(t, err)
			b, err := namegen.NewGenerator(mode, slices.Values(romans), namegen.WithSeed(123), namegen.WithPattern(`^.{3,}$`))
			require.NoError(t, err)

			namesA, err := a.GenerateN(context.Background(), 30)
			require.NoError(t, err)
			namesB, err := b.GenerateN(context.Background(), 30)
			require.NoError(t, err)
			assert.Equal(t, namesA, namesB)
		})
	}
}

func TestGenerator_InjectedSource(t *testing.T) {
	t.Parallel()

	a := characterGen(t, namegen.WithRandSource(rand.New(rand.NewPCG(9, 9))))
	b := characterGen(t, namegen.WithRandSource(rand.New(rand.NewPCG(9, 9))))
	for range 20 {
		x, err := a.Generate()
		require.NoError(t, err)
		y, err := b.Generate()
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

func TestGenerator_LowercaseOutput(t *testing.T) {
	t.Parallel()

	gen := characterGen(t, namegen.WithSeed(3))
	for range 100 {
		out, err := gen.Generate()
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(out), out)
	}
}

func TestGenerator_EmptyCorpus(t *testing.T) {
	t.Parallel()

	for _, opt := range []namegen.Option{namegen.WithoutPrior(), namegen.WithPrior(0.01)} {
		cb, err := namegen.NewCharacterBuilder(opt)
		require.NoError(t, err)
		gen, err := cb.Build()
		require.NoError(t, err, "an untrained model still builds")
		_, err = gen.Generate()
		assert.ErrorIs(t, err, namegen.ErrUndefinedContext)

		kb, err := namegen.NewClusterBuilder(opt)
		require.NoError(t, err)
		kgen, err := kb.Train(slices.Values([]string{})).Build()
		require.NoError(t, err)
		_, err = kgen.Generate()
		assert.ErrorIs(t, err, namegen.ErrUndefinedContext)
	}
}

func TestGenerator_MaxAttempts(t *testing.T) {
	t.Parallel()

	// 'z' never occurs in the corpus, so without a prior it can never be produced.
	gen := characterGen(t, namegen.WithSeed(4), namegen.WithoutPrior(),
		namegen.WithPattern("z"), namegen.WithMaxAttempts(50))

	_, err := gen.Generate()
	require.ErrorIs(t, err, namegen.ErrPatternUnsatisfiable)
	assert.Contains(t, err.Error(), "50 candidates")

	ok := characterGen(t, namegen.WithSeed(4), namegen.WithPattern(`^[a-z]+$`), namegen.WithMaxAttempts(1000))
	_, err = ok.Generate()
	assert.NoError(t, err)
}

func TestGenerator_ContextCancellation(t *testing.T) {
	t.Parallel()

	gen := characterGen(t, namegen.WithSeed(5), namegen.WithoutPrior(), namegen.WithPattern("z"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := gen.GenerateContext(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)

	cancelled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	_, err = gen.GenerateN(cancelled, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerator_GenerateN(t *testing.T) {
	t.Parallel()

	gen := characterGen(t, namegen.WithSeed(6))

	names, err := gen.GenerateN(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, names)

	names, err = gen.GenerateN(context.Background(), -1)
	require.NoError(t, err)
	assert.Empty(t, names)

	names, err = gen.GenerateN(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, names, 7)
}

func TestGenerator_Fork(t *testing.T) {
	t.Parallel()

	gen := clusterGen(t, namegen.WithSeed(8))
	a := gen.Fork(rand.New(rand.NewPCG(1, 1)))
	b := gen.Fork(rand.New(rand.NewPCG(1, 1)))

	assert.Equal(t, gen.Pattern(), a.Pattern())
	assert.Equal(t, gen.Order(), a.Order())

	for range 20 {
		x, err := a.Generate()
		require.NoError(t, err)
		y, err := b.Generate()
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}

	_, err := gen.Fork(nil).Generate()
	assert.NoError(t, err)
}

func TestGenerator_ConcurrentUse(t *testing.T) {
	t.Parallel()

	gen := characterGen(t, namegen.WithPattern(`^[a-z]{3,10}$`))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				_, err := gen.Generate()
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

func TestGenerator_LogsRejections(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))

	gen := characterGen(t, namegen.WithSeed(10), namegen.WithPattern(`^[a-z]{9,}$`), namegen.WithLogger(log))
	_, err := gen.Generate()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "name generated")
	assert.Contains(t, out, "candidate=")
}

func TestNewGenerator_UnknownMode(t *testing.T) {
	t.Parallel()

	_, err := namegen.NewGenerator("syllable", slices.Values(romans))
	assert.ErrorIs(t, err, namegen.ErrUnknownMode)

	_, err = namegen.NewGenerator(namegen.ModeCharacter, slices.Values(romans), namegen.WithOrder(0))
	assert.ErrorIs(t, err, namegen.ErrInvalidOrder)
}
