package markov

// node holds the successor weights of one context. Children are keyed by the
// symbol one step further back, so the path from the root to a node spells the
// context in reverse.
type node[S comparable] struct {
	children map[S]*node[S]
	symbols  []S
	weights  []float64
	index    map[S]int
	total    float64
}

func newNode[S comparable]() *node[S] {
	return &node[S]{
		children: make(map[S]*node[S]),
		index:    make(map[S]int),
	}
}

func (n *node[S]) child(s S) *node[S] {
	c, ok := n.children[s]
	if !ok {
		c = newNode[S]()
		n.children[s] = c
	}
	return c
}

func (n *node[S]) add(s S, w float64) {
	i, ok := n.index[s]
	if !ok {
		i = len(n.symbols)
		n.index[s] = i
		n.symbols = append(n.symbols, s)
		n.weights = append(n.weights, 0)
	}
	n.weights[i] += w
	n.total += w
}

func (n *node[S]) weight(s S) float64 {
	if i, ok := n.index[s]; ok {
		return n.weights[i]
	}
	return 0
}

// clone copies the subtree and reports how many nodes carry successors.
func (n *node[S]) clone() (*node[S], int) {
	c := &node[S]{
		children: make(map[S]*node[S], len(n.children)),
		symbols:  append([]S(nil), n.symbols...),
		weights:  append([]float64(nil), n.weights...),
		index:    make(map[S]int, len(n.index)),
		total:    n.total,
	}
	for s, i := range n.index {
		c.index[s] = i
	}

	count := 0
	if n.total > 0 {
		count = 1
	}
	for s, ch := range n.children {
		cc, k := ch.clone()
		c.children[s] = cc
		count += k
	}
	return c, count
}
