package pll

// Permutation maps each of the four last-layer slots to the index of the
// piece that occupies it.
type Permutation [4]int

// Identity leaves every piece in place.
var Identity = Permutation{0, 1, 2, 3}

// IsValid reports whether p is a bijection on {0,1,2,3}.
func (p Permutation) IsValid() bool {
	var seen [4]bool
	for _, v := range p {
		if v < 0 || v > 3 || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Even reports whether p is an even permutation. It sorts a copy in
// place by swaps and counts the transpositions.
// p must be valid.
func (p Permutation) Even() bool {
	perm := p
	even := true
	for i := range perm {
		if perm[i] == i {
			continue
		}
		c := perm.index(i)
		perm[i], perm[c] = perm[c], perm[i]
		even = !even
	}
	return even
}

// index returns the position holding v, or -1.
func (p Permutation) index(v int) int {
	for i, x := range p {
		if x == v {
			return i
		}
	}
	return -1
}

// Cycles returns the cycle decomposition of p, fixed points included,
// each cycle starting at its smallest element.
// p must be valid.
func (p Permutation) Cycles() [][]int {
	var (
		visited [4]bool
		cycles  [][]int
	)
	for start := range p {
		if visited[start] {
			continue
		}
		var cycle []int
		for i := start; !visited[i]; i = p[i] {
			visited[i] = true
			cycle = append(cycle, i)
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}

// EvenByCycles computes parity from the cycle decomposition:
// a permutation of n elements with k cycles is even iff n-k is even.
func (p Permutation) EvenByCycles() bool {
	return (len(p)-len(p.Cycles()))%2 == 0
}

// Then returns the permutation equivalent to re-indexing through p and
// then through q: (p.Then(q))[i] = p[q[i]].
func (p Permutation) Then(q Permutation) Permutation {
	var out Permutation
	for i := range out {
		out[i] = p[q[i]]
	}
	return out
}
