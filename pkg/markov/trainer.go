package markov

import (
	"iter"
	"math"
)

// Trainer accumulates transition counts for a chain of a fixed order.
type Trainer[S comparable] struct {
	order    int
	prior    float64
	hasPrior bool
	root     *node[S]
	alphabet []S
	seen     map[S]struct{}
}

// NewTrainer creates an empty trainer for a chain of the given order.
func NewTrainer[S comparable](order int, opts ...Option) (*Trainer[S], error) {
	if order <= 0 {
		return nil, ErrInvalidOrder
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if s.hasPrior && (s.prior < 0 || math.IsNaN(s.prior) || math.IsInf(s.prior, 0)) {
		return nil, ErrInvalidPrior
	}

	return &Trainer[S]{
		order:    order,
		prior:    s.prior,
		hasPrior: s.hasPrior,
		root:     newNode[S](),
		seen:     make(map[S]struct{}),
	}, nil
}

// Order returns the maximum context length.
func (t *Trainer[S]) Order() int { return t.order }

// Train adds every sequence yielded by seqs to the accumulated counts.
func (t *Trainer[S]) Train(seqs iter.Seq[[]S]) {
	for seq := range seqs {
		t.TrainSequence(seq)
	}
}

// TrainSequence adds the transitions of a single sequence. For each position
// the successor is recorded under every trailing context of length 1..order.
func (t *Trainer[S]) TrainSequence(seq []S) {
	for _, s := range seq {
		if _, ok := t.seen[s]; !ok {
			t.seen[s] = struct{}{}
			t.alphabet = append(t.alphabet, s)
		}
	}

	for i := 1; i < len(seq); i++ {
		n := t.root
		for k := 1; k <= t.order && k <= i; k++ {
			n = n.child(seq[i-k])
			n.add(seq[i], 1)
		}
	}
}

// Build returns an immutable snapshot of the accumulated counts.
func (t *Trainer[S]) Build() *Model[S] {
	root, contexts := t.root.clone()
	return &Model[S]{
		order:    t.order,
		prior:    t.prior,
		hasPrior: t.hasPrior,
		root:     root,
		alphabet: append([]S(nil), t.alphabet...),
		contexts: contexts,
	}
}
