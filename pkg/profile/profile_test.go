package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen"
	"github.com/dmitrymomot/namegen/pkg/profile"
)

const catalogYAML = `
romans:
  order: 4
  prior: 0.01
  pattern: "^[a-z]{4,9}$"
  seed: 7
  corpus: [romans.txt, /abs/extra.txt]
dwarfs:
  mode: cluster
  no_prior: true
  max_attempts: 500
  extra_vowels: "y"
  corpus: [dwarfs.txt]
`

func TestParse(t *testing.T) {
	t.Parallel()

	cat, err := profile.Parse([]byte(catalogYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"dwarfs", "romans"}, cat.Names())

	romans, err := cat.Get("romans")
	require.NoError(t, err)
	assert.Equal(t, "romans", romans.Name)

	cfg := romans.Config()
	assert.Equal(t, "character", cfg.Mode)
	assert.Equal(t, 4, cfg.Order)
	require.NotNil(t, cfg.Prior)
	assert.InDelta(t, 0.01, *cfg.Prior, 1e-12)
	assert.Equal(t, "^[a-z]{4,9}$", cfg.Pattern)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, []string{"romans.txt", "/abs/extra.txt"}, romans.Corpus)

	dwarfs, err := cat.Get("dwarfs")
	require.NoError(t, err)
	cfg = dwarfs.Config()
	assert.Equal(t, "cluster", cfg.Mode)
	assert.True(t, cfg.NoPrior)
	assert.Nil(t, cfg.Prior)
	assert.Equal(t, 500, cfg.MaxAttempts)
	assert.Equal(t, "y", cfg.ExtraVowels)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		err  error
	}{
		{name: "malformed", data: "romans: [", err: profile.ErrParseCatalog},
		{name: "empty", data: "", err: profile.ErrEmptyCatalog},
		{name: "unknown mode", data: "x:\n  mode: syllable\n", err: namegen.ErrUnknownMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := profile.Parse([]byte(tt.data))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestCatalog_GetMissing(t *testing.T) {
	t.Parallel()

	cat, err := profile.Parse([]byte(catalogYAML))
	require.NoError(t, err)

	_, err = cat.Get("elves")
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o600))

	cat, err := profile.Load(path)
	require.NoError(t, err)

	romans, err := cat.Get("romans")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "romans.txt"), "/abs/extra.txt"}, romans.Corpus)

	_, err = profile.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, profile.ErrReadCatalog)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestProfile_BuildsGenerator(t *testing.T) {
	t.Parallel()

	cat, err := profile.Parse([]byte("latin:\n  seed: 3\n  max_attempts: 1000\n  pattern: \"^[a-z]+$\"\n"))
	require.NoError(t, err)
	p, err := cat.Get("latin")
	require.NoError(t, err)

	gen, err := namegen.NewFromConfig(p.Config(), func(yield func(string) bool) {
		for _, w := range []string{"marcus", "lucius", "gaius", "tiberius"} {
			if !yield(w) {
				return
			}
		}
	})
	require.NoError(t, err)

	name, err := gen.Generate()
	require.NoError(t, err)
	assert.Regexp(t, "^[a-z]+$", name)
}
