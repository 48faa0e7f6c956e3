package audit

import "github.com/sky-flux/pll"

// ParityResult records both parity computations for one permutation.
type ParityResult struct {
	Label  string          `json:"label"`
	Piece  string          `json:"piece"` // "corners" or "edges"
	Perm   pll.Permutation `json:"perm"`
	Swaps  bool            `json:"swaps"`  // even, by swap counting
	Cycles bool            `json:"cycles"` // even, by cycle decomposition
}

// Agree reports whether both methods gave the same parity.
func (p ParityResult) Agree() bool {
	return p.Swaps == p.Cycles
}

// Parity computes the parity of every corner and edge permutation in t.
func Parity(t *pll.Table) []ParityResult {
	cases := t.Cases()
	out := make([]ParityResult, 0, 2*len(cases))
	for _, c := range cases {
		out = append(out,
			parityOf(c.Label, "corners", c.Corners),
			parityOf(c.Label, "edges", c.Edges),
		)
	}
	return out
}

// Mismatches returns the results of Parity where the two methods disagree.
func Mismatches(t *pll.Table) []ParityResult {
	var bad []ParityResult
	for _, r := range Parity(t) {
		if !r.Agree() {
			bad = append(bad, r)
		}
	}
	return bad
}

// SolvableParity reports whether every case permutes corners and edges
// with equal parity, which any reachable last-layer state must do.
func SolvableParity(t *pll.Table) []string {
	var bad []string
	for _, c := range t.Cases() {
		if c.Corners.Even() != c.Edges.Even() {
			bad = append(bad, c.Label)
		}
	}
	return bad
}

func parityOf(label, piece string, p pll.Permutation) ParityResult {
	return ParityResult{
		Label:  label,
		Piece:  piece,
		Perm:   p,
		Swaps:  p.Even(),
		Cycles: p.EvenByCycles(),
	}
}
