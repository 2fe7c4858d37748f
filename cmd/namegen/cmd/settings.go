package cmd

import (
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/namegen"
	"github.com/dmitrymomot/namegen/pkg/config"
	"github.com/dmitrymomot/namegen/pkg/corpus"
	"github.com/dmitrymomot/namegen/pkg/httpserver"
	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/profile"
	"github.com/dmitrymomot/namegen/pkg/ratelimiter"
)

// settings is everything namegen reads from the environment.
type settings struct {
	namegen.Config

	Corpus    []string `env:"NAMEGEN_CORPUS" envSeparator:","`
	Profiles  string   `env:"NAMEGEN_PROFILES" envDefault:"namegen.yaml"`
	Profile   string   `env:"NAMEGEN_PROFILE"`
	LogLevel  string   `env:"NAMEGEN_LOG_LEVEL" envDefault:"info"`
	LogFormat string   `env:"NAMEGEN_LOG_FORMAT" envDefault:"text"`

	HTTP       httpserver.Config
	RateLimit  ratelimiter.Config
	TrustProxy bool `env:"NAMEGEN_HTTP_TRUST_PROXY"`
}

// chainFlags are the generator flags shared by generate and serve.
type chainFlags struct {
	corpus      []string
	mode        string
	order       int
	prior       float64
	noPrior     bool
	pattern     string
	seed        uint64
	maxAttempts int
	extraVowels string
	profile     string
	profiles    string
}

func (f *chainFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&f.corpus, "corpus", "c", nil, "Corpus files, one name per line")
	fs.StringVarP(&f.mode, "mode", "m", "", "Chain mode: character or cluster")
	fs.IntVarP(&f.order, "order", "o", 0, "Chain order (default 3)")
	fs.Float64Var(&f.prior, "prior", 0, "Additive prior weight for unseen transitions")
	fs.BoolVar(&f.noPrior, "no-prior", false, "Disable the prior")
	fs.StringVarP(&f.pattern, "pattern", "p", "", "Regular expression every name must match")
	fs.Uint64Var(&f.seed, "seed", 0, "Random seed for reproducible output (0 = random)")
	fs.IntVar(&f.maxAttempts, "max-attempts", 0, "Give up after this many rejected candidates (0 = never)")
	fs.StringVar(&f.extraVowels, "vowels", "", "Extra letters treated as vowels in cluster mode")
	fs.StringVar(&f.profile, "profile", "", "Use a named profile from the profiles file")
	fs.StringVar(&f.profiles, "profiles", "", "Profiles file (default namegen.yaml)")
}

// load resolves settings from the environment, an optional profile and the
// flags that were set explicitly, in that order of precedence.
func (f *chainFlags) load(cmd *cobra.Command, g *globalFlags) (*settings, error) {
	s := &settings{}
	if err := config.Load(s, g.envFiles...); err != nil {
		return nil, err
	}

	if f.profiles != "" {
		s.Profiles = f.profiles
	}
	if f.profile != "" {
		s.Profile = f.profile
	}
	if s.Profile != "" {
		cat, err := profile.Load(s.Profiles)
		if err != nil {
			return nil, err
		}
		p, err := cat.Get(s.Profile)
		if err != nil {
			return nil, err
		}
		s.Config = p.Config()
		if len(p.Corpus) > 0 {
			s.Corpus = p.Corpus
		}
	}

	flags := cmd.Flags()
	if flags.Changed("corpus") {
		s.Corpus = f.corpus
	}
	if flags.Changed("mode") {
		s.Mode = f.mode
	}
	if flags.Changed("order") {
		s.Order = f.order
	}
	if flags.Changed("prior") {
		s.Prior = &f.prior
		s.NoPrior = false
	}
	if flags.Changed("no-prior") {
		s.NoPrior = f.noPrior
	}
	if flags.Changed("pattern") {
		s.Pattern = f.pattern
	}
	if flags.Changed("seed") {
		s.Seed = f.seed
	}
	if flags.Changed("max-attempts") {
		s.MaxAttempts = f.maxAttempts
	}
	if flags.Changed("vowels") {
		s.ExtraVowels = f.extraVowels
	}
	return s, nil
}

// buildNamer reads the corpus and trains a generator on it.
func buildNamer(s *settings, log *slog.Logger) (namegen.Namer, error) {
	if len(s.Corpus) == 0 {
		return nil, ErrNoCorpus
	}
	words, err := corpus.ReadFiles(s.Corpus...)
	if err != nil {
		return nil, err
	}

	gen, err := namegen.NewFromConfig(s.Config, slices.Values(words), namegen.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Debug("generator trained",
		logger.Mode(gen.Mode().String()),
		logger.Count(len(words)),
		slog.Int("order", gen.Order()),
	)
	return gen, nil
}
