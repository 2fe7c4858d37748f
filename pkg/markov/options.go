package markov

// Option configures a Trainer.
type Option func(*settings)

type settings struct {
	prior    float64
	hasPrior bool
}

// WithPrior sets the additive smoothing weight applied to every alphabet
// symbol at sampling time. The value is validated by NewTrainer.
func WithPrior(p float64) Option {
	return func(s *settings) {
		s.prior = p
		s.hasPrior = true
	}
}

// WithoutPrior disables prior smoothing.
func WithoutPrior() Option {
	return func(s *settings) {
		s.prior = 0
		s.hasPrior = false
	}
}
