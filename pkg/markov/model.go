package markov

// Source supplies uniformly distributed numbers in [0, 1).
// *math/rand.Rand and *math/rand/v2.Rand satisfy it.
type Source interface {
	Float64() float64
}

// Model is a trained, immutable chain.
type Model[S comparable] struct {
	order    int
	prior    float64
	hasPrior bool
	root     *node[S]
	alphabet []S
	contexts int
}

// Order returns the maximum context length used for lookups.
func (m *Model[S]) Order() int { return m.order }

// Prior returns the smoothing weight and whether one is configured.
func (m *Model[S]) Prior() (float64, bool) { return m.prior, m.hasPrior }

// Alphabet returns every symbol seen during training, in first-seen order.
func (m *Model[S]) Alphabet() []S {
	return append([]S(nil), m.alphabet...)
}

// Len returns the number of distinct contexts with recorded successors.
func (m *Model[S]) Len() int { return m.contexts }

// lookup returns the node of the longest suffix of context that has
// successors, or nil.
func (m *Model[S]) lookup(context []S) *node[S] {
	var best *node[S]
	n := m.root
	for k := 1; k <= m.order && k <= len(context); k++ {
		next, ok := n.children[context[len(context)-k]]
		if !ok {
			break
		}
		n = next
		if n.total > 0 {
			best = n
		}
	}
	return best
}

// Successors returns the sampling weights for the longest known suffix of
// context, prior included. It returns nil when RandomNext would fail.
func (m *Model[S]) Successors(context []S) map[S]float64 {
	n := m.lookup(context)
	if n == nil && (!m.hasPrior || len(m.alphabet) == 0) {
		return nil
	}

	out := make(map[S]float64, len(m.alphabet))
	if m.hasPrior {
		for _, s := range m.alphabet {
			out[s] = m.prior
		}
	}
	if n != nil {
		for i, s := range n.symbols {
			out[s] += n.weights[i]
		}
	}
	return out
}

// RandomNext samples a successor for the trailing context.
func (m *Model[S]) RandomNext(src Source, context []S) (S, error) {
	var zero S

	n := m.lookup(context)
	switch {
	case n == nil && (!m.hasPrior || len(m.alphabet) == 0):
		return zero, ErrUndefinedContext
	case n == nil:
		i := int(src.Float64() * float64(len(m.alphabet)))
		return m.alphabet[min(i, len(m.alphabet)-1)], nil
	case !m.hasPrior || m.prior == 0:
		return pick(src, n.symbols, n.weights, n.total), nil
	}

	r := src.Float64() * (n.total + m.prior*float64(len(m.alphabet)))
	for _, s := range m.alphabet {
		w := m.prior + n.weight(s)
		if r < w {
			return s, nil
		}
		r -= w
	}
	return m.alphabet[len(m.alphabet)-1], nil
}

func pick[S comparable](src Source, symbols []S, weights []float64, total float64) S {
	r := src.Float64() * total
	for i, w := range weights {
		if r < w {
			return symbols[i]
		}
		r -= w
	}
	return symbols[len(symbols)-1]
}
