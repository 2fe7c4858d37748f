// Package markov implements a generic, weighted Markov chain keyed by a
// variable-length context of preceding symbols.
//
// The chain is built in two phases. A Trainer accumulates transition counts
// from symbol sequences; every call to Train is cumulative, so several corpora
// can be merged by training on each of them in turn. Build then takes an
// immutable snapshot of the accumulated counts as a Model, which is used for
// sampling. The trainer stays usable after Build: further training never
// affects models that were already built.
//
// # Contexts and fallback
//
// A chain of order N records, for each position in a training sequence, the
// successor symbol under every trailing context of length 1..N. When sampling,
// Model.RandomNext looks up the longest suffix of the supplied context that has
// recorded successors and falls back to shorter suffixes. Near the start of a
// sequence the context is naturally shorter than N.
//
// # Prior smoothing
//
// A model configured WithPrior(p) adds the weight p to every symbol of the
// alphabet (all symbols ever seen during training) for every context, so that
// unobserved transitions remain possible at reduced probability. Observed
// transitions weigh 1.0 per occurrence; weights are never normalised, so a
// larger corpus makes the same prior relatively smaller.
//
// Without a prior, a context that has no recorded successors at any length
// yields ErrUndefinedContext. With a prior, such a context samples uniformly
// from the alphabet, and only an empty alphabet yields ErrUndefinedContext.
//
// # Determinism and concurrency
//
// Successors are stored in first-seen order, so for a given training input and
// a given Source the sampled symbols are reproducible. A Model is never mutated
// after Build and is safe for concurrent use. A Trainer is not safe for
// concurrent use. Sources are not synchronised by this package.
//
// # Usage
//
//	tr, err := markov.NewTrainer[rune](2, markov.WithPrior(0.01))
//	if err != nil {
//		return err
//	}
//	tr.TrainSequence([]rune("#anna#"))
//	tr.TrainSequence([]rune("#hannah#"))
//
//	model := tr.Build()
//	next, err := model.RandomNext(rand.New(rand.NewPCG(1, 2)), []rune("#a"))
package markov
