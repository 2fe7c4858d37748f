package markov_test

import (
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/pkg/markov"
)

// fixedSource returns the same value on every draw.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func seqs(words ...string) [][]rune {
	out := make([][]rune, 0, len(words))
	for _, w := range words {
		out = append(out, []rune("#"+w+"#"))
	}
	return out
}

func TestNewTrainer_Validation(t *testing.T) {
	t.Parallel()

	_, err := markov.NewTrainer[rune](0)
	assert.ErrorIs(t, err, markov.ErrInvalidOrder)

	_, err = markov.NewTrainer[rune](-2)
	assert.ErrorIs(t, err, markov.ErrInvalidOrder)

	for _, p := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		_, err = markov.NewTrainer[rune](2, markov.WithPrior(p))
		assert.ErrorIs(t, err, markov.ErrInvalidPrior, "prior %v", p)
	}

	tr, err := markov.NewTrainer[rune](2, markov.WithPrior(-1), markov.WithoutPrior())
	require.NoError(t, err, "WithoutPrior should clear an earlier prior")
	assert.Equal(t, 2, tr.Order())
}

func TestModel_SuccessorsWithoutPrior(t *testing.T) {
	t.Parallel()

	tr, err := markov.NewTrainer[rune](2)
	require.NoError(t, err)
	tr.Train(slices.Values(seqs("ab", "ac", "ab")))

	m := tr.Build()
	assert.Equal(t, map[rune]float64{'a': 3}, m.Successors([]rune("#")))
	assert.Equal(t, map[rune]float64{'b': 2, 'c': 1}, m.Successors([]rune("#a")))
	assert.Equal(t, map[rune]float64{'#': 2}, m.Successors([]rune("ab")))
	assert.Equal(t, []rune{'#', 'a', 'b', 'c'}, m.Alphabet())

	_, hasPrior := m.Prior()
	assert.False(t, hasPrior)
}

func TestModel_FallsBackToShorterContext(t *testing.T) {
	t.Parallel()

	tr, err := markov.NewTrainer[rune](3)
	require.NoError(t, err)
	tr.TrainSequence([]rune("#xab#"))

	m := tr.Build()
	// "zzb" was never seen as a whole, but "b" was.
	assert.Equal(t, map[rune]float64{'#': 1}, m.Successors([]rune("zzb")))

	next, err := m.RandomNext(fixedSource(0.5), []rune("zzb"))
	require.NoError(t, err)
	assert.Equal(t, '#', next)
}

func TestModel_PriorAddsEveryAlphabetSymbol(t *testing.T) {
	t.Parallel()

	tr, err := markov.NewTrainer[rune](1, markov.WithPrior(0.5))
	require.NoError(t, err)
	tr.TrainSequence([]rune("#ab#"))

	m := tr.Build()
	assert.Equal(t, map[rune]float64{'#': 0.5, 'a': 1.5, 'b': 0.5}, m.Successors([]rune("#")))

	// Unknown context falls back to a uniform draw over the alphabet.
	assert.Equal(t, map[rune]float64{'#': 0.5, 'a': 0.5, 'b': 0.5}, m.Successors([]rune("q")))
	next, err := m.RandomNext(fixedSource(0.99), []rune("q"))
	require.NoError(t, err)
	assert.Equal(t, 'b', next)
}

func TestModel_UndefinedContext(t *testing.T) {
	t.Parallel()

	tr, err := markov.NewTrainer[rune](2)
	require.NoError(t, err)
	tr.TrainSequence([]rune("#ab#"))

	_, err = tr.Build().RandomNext(fixedSource(0), []rune("zz"))
	assert.ErrorIs(t, err, markov.ErrUndefinedContext)

	empty, err := markov.NewTrainer[rune](2, markov.WithPrior(1))
	require.NoError(t, err)
	_, err = empty.Build().RandomNext(fixedSource(0), []rune("#"))
	assert.ErrorIs(t, err, markov.ErrUndefinedContext, "empty alphabet has nothing to smooth over")
	assert.Nil(t, empty.Build().Successors([]rune("#")))
}

func TestModel_PickFollowsWeights(t *testing.T) {
	t.Parallel()

	tr, err := markov.NewTrainer[string](1)
	require.NoError(t, err)
	tr.TrainSequence([]string{"#", "a", "#"})
	tr.TrainSequence([]string{"#", "b", "#"})
	tr.TrainSequence([]string{"#", "b", "#"})
	tr.TrainSequence([]string{"#", "b", "#"})

	m := tr.Build()
	// weights after "#": a=1, b=3, total 4
	for _, tc := range []struct {
		r    float64
		want string
	}{
		{0.0, "a"},
		{0.24, "a"},
		{0.25, "b"},
		{0.999, "b"},
	} {
		got, err := m.RandomNext(fixedSource(tc.r), []string{"#"})
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "r=%v", tc.r)
	}
}

func TestTrainer_CumulativeTrainingMatchesConcatenation(t *testing.T) {
	t.Parallel()

	a := seqs("marcus", "julia", "gaius")
	b := seqs("livia", "tiberius", "octavia")

	split, err := markov.NewTrainer[rune](3, markov.WithPrior(0.01))
	require.NoError(t, err)
	split.Train(slices.Values(a))
	split.Train(slices.Values(b))

	whole, err := markov.NewTrainer[rune](3, markov.WithPrior(0.01))
	require.NoError(t, err)
	whole.Train(slices.Values(slices.Concat(a, b)))

	ms, mw := split.Build(), whole.Build()
	assert.Equal(t, mw.Len(), ms.Len())
	assert.Equal(t, mw.Alphabet(), ms.Alphabet())
	for _, ctx := range []string{"#", "#ma", "ia", "us", "tav", "zz"} {
		assert.Equal(t, mw.Successors([]rune(ctx)), ms.Successors([]rune(ctx)), "context %q", ctx)
	}
}

func TestTrainer_OrderSensitivity(t *testing.T) {
	t.Parallel()

	corpus := seqs("xab", "yac")

	low, err := markov.NewTrainer[rune](1)
	require.NoError(t, err)
	low.Train(slices.Values(corpus))
	m1 := low.Build()
	// At order 1 only the last symbol matters.
	assert.Equal(t, m1.Successors([]rune("xa")), m1.Successors([]rune("ya")))

	high, err := markov.NewTrainer[rune](3)
	require.NoError(t, err)
	high.Train(slices.Values(corpus))
	m3 := high.Build()
	assert.Equal(t, map[rune]float64{'b': 1}, m3.Successors([]rune("xa")))
	assert.Equal(t, map[rune]float64{'c': 1}, m3.Successors([]rune("ya")))
}

func TestTrainer_BuildSnapshotIsIndependent(t *testing.T) {
	t.Parallel()

	tr, err := markov.NewTrainer[rune](2)
	require.NoError(t, err)
	tr.TrainSequence([]rune("#ab#"))
	m := tr.Build()
	before := m.Successors([]rune("#"))

	tr.TrainSequence([]rune("#cd#"))
	assert.Equal(t, before, m.Successors([]rune("#")))
	assert.Equal(t, []rune{'#', 'a', 'b'}, m.Alphabet())
	assert.NotEqual(t, before, tr.Build().Successors([]rune("#")))
}

func TestModel_DeterministicForSeed(t *testing.T) {
	t.Parallel()

	tr, err := markov.NewTrainer[rune](2, markov.WithPrior(0.05))
	require.NoError(t, err)
	tr.Train(slices.Values(seqs("aurelia", "cornelius", "flavia", "quintus")))
	m := tr.Build()

	walk := func(seed uint64) []rune {
		src := rand.New(rand.NewPCG(seed, seed))
		ctx := []rune{'#'}
		for range 50 {
			next, err := m.RandomNext(src, ctx)
			require.NoError(t, err)
			ctx = append(ctx, next)
		}
		return ctx
	}
	assert.Equal(t, walk(7), walk(7))
}

func TestModel_ConcurrentReads(t *testing.T) {
	t.Parallel()

	tr, err := markov.NewTrainer[rune](3, markov.WithPrior(0.01))
	require.NoError(t, err)
	tr.Train(slices.Values(seqs("aurelia", "cornelius", "flavia", "quintus")))
	m := tr.Build()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			src := rand.New(rand.NewPCG(seed, 0))
			for range 200 {
				_, err := m.RandomNext(src, []rune("#au"))
				assert.NoError(t, err)
			}
		}(uint64(i))
	}
	wg.Wait()
}
