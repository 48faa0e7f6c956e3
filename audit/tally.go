package audit

import "github.com/sky-flux/pll"

// tally counts draws per raw label and per rotation.
type tally struct {
	byLabel    map[string]int
	byRotation [len(pll.Rotations)]int
	total      int
}

func newTally(t *pll.Table) *tally {
	return &tally{byLabel: make(map[string]int, t.Len())}
}

func (t *tally) add(d pll.Draw) {
	t.byLabel[d.Label]++
	if d.Rotation >= 0 && d.Rotation < len(t.byRotation) {
		t.byRotation[d.Rotation]++
	}
	t.total++
}

// report turns the counts into per-case observations in registry order.
func (t *tally) report(table *pll.Table) Report {
	cases := table.Cases()
	r := Report{
		Draws:     t.total,
		Cases:     make([]CaseFrequency, len(cases)),
		Rotations: t.byRotation,
	}
	for i, c := range cases {
		observed := t.byLabel[c.Label]
		expected := table.Probability(c.Label)
		r.Cases[i] = CaseFrequency{
			Label:    c.Label,
			Weight:   c.Weight,
			Observed: observed,
			Expected: expected,
			Share:    float64(observed) / float64(t.total),
		}
	}
	r.ChiSquare = chiSquare(r.Cases, t.total)
	return r
}
