// Package namegen procedurally generates short strings, typically names, that
// statistically resemble a training corpus.
//
// Generation uses an order-N Markov chain over one of two kinds of symbols:
//
//   - Characters (Builder[rune]): the chain learns which letters follow the
//     last N letters.
//   - Clusters (Builder[string]): every word is first split into alternating
//     runs of vowels and consonants, so "fascinating" becomes
//     "f", "a", "sc", "i", "n", "a", "t", "i", "ng". The chain then learns
//     which cluster follows the last N clusters.
//
// # Pipeline
//
//	raw strings → Normalize → symbol sequences → Builder.Train (cumulative)
//	            → Builder.Build → Generator.Generate → accepted string
//
// Every training string is normalised (NFC, lowercased, sentinel character
// removed), segmented into symbols and bracketed by the sentinel "#". A
// generator starts from the sentinel, samples successors until the sentinel
// comes up again and joins the symbols in between. Output is therefore always
// lowercase; callers wanting capitalised names re-capitalise downstream.
//
// # Usage
//
//	b, err := namegen.NewCharacterBuilder(
//		namegen.WithOrder(3),
//		namegen.WithPrior(0.007),
//		namegen.WithPattern(`^[a-z]{4,8}$`),
//		namegen.WithSeed(123),
//	)
//	if err != nil {
//		return err
//	}
//
//	gen, err := b.TrainStrings("aurelius", "cornelia", "flavius").Build()
//	if err != nil {
//		return err
//	}
//
//	name, err := gen.Generate()
//
// Train may be called any number of times before Build; counts accumulate.
// Build takes a snapshot, so a builder can keep training and build again
// without touching generators it already returned.
//
// # Acceptance patterns
//
// WithPattern sets a regular expression that every returned string must
// match. Candidates that do not match are discarded and a new one is walked,
// with no retry limit by default. A pattern the model can never satisfy, for
// example one requiring a letter absent from the training data, makes Generate
// loop forever. WithMaxAttempts caps the number of rejected candidates and
// turns that case into ErrPatternUnsatisfiable; GenerateContext stops when its
// context is done.
//
// # Errors
//
//   - ErrInvalidOrder, ErrInvalidPrior, ErrInvalidMaxAttempts, ErrNilRandSource:
//     returned by the builder constructors, before any training happens.
//   - ErrInvalidPattern: returned by Build when the pattern does not compile.
//   - ErrUndefinedContext: returned by Generate when the model has no
//     successors for the start of a name, e.g. after training on nothing
//     without a prior.
//   - ErrPatternUnsatisfiable: returned by Generate once the retry ceiling is hit.
//
// # Concurrency
//
// A Generator may be shared by several goroutines: the model is immutable and
// every draw from the random source is serialised. The order in which shared
// draws interleave is not deterministic; use Fork to give each goroutine its
// own seeded source when reproducibility matters. Builders are not safe for
// concurrent use.
package namegen
