package pll

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Case is one PLL case: the permutation it applies to the solved corners
// and edges, and its relative sampling weight.
type Case struct {
	Label   string      `json:"label"`
	Corners Permutation `json:"corners"`
	Edges   Permutation `json:"edges"`
	Weight  int         `json:"weight"`
}

// DefaultCases are the 22 PLL cases in registry order. Weights follow
// the real-world frequency of each case; registry order matters for
// seeded reproducibility.
var DefaultCases = []Case{
	{"Aa", Permutation{0, 3, 1, 2}, Permutation{0, 1, 2, 3}, 4},
	{"Ab", Permutation{1, 2, 0, 3}, Permutation{0, 1, 2, 3}, 4},
	{"E", Permutation{1, 0, 3, 2}, Permutation{0, 1, 2, 3}, 2},
	{"F", Permutation{0, 1, 3, 2}, Permutation{0, 3, 2, 1}, 4},
	{"Ga", Permutation{3, 0, 2, 1}, Permutation{2, 1, 3, 0}, 4},
	{"Gb", Permutation{1, 3, 2, 0}, Permutation{3, 1, 0, 2}, 4},
	{"Gc", Permutation{1, 2, 0, 3}, Permutation{2, 0, 1, 3}, 4},
	{"Gd", Permutation{2, 0, 1, 3}, Permutation{1, 2, 0, 3}, 4},
	{"H", Permutation{0, 1, 2, 3}, Permutation{2, 3, 0, 1}, 1},
	{"Ja", Permutation{3, 1, 2, 0}, Permutation{3, 1, 2, 0}, 4},
	{"Jb", Permutation{0, 2, 1, 3}, Permutation{1, 0, 2, 3}, 4},
	{"Na", Permutation{2, 1, 0, 3}, Permutation{0, 3, 2, 1}, 1},
	{"Nb", Permutation{0, 3, 2, 1}, Permutation{0, 3, 2, 1}, 1},
	{"Ra", Permutation{1, 0, 2, 3}, Permutation{0, 2, 1, 3}, 4},
	{"Rb", Permutation{0, 1, 3, 2}, Permutation{1, 0, 2, 3}, 4},
	{"S", Permutation{0, 1, 2, 3}, Permutation{0, 1, 2, 3}, 1},
	{"T", Permutation{0, 2, 1, 3}, Permutation{0, 3, 2, 1}, 4},
	{"Ua", Permutation{0, 1, 2, 3}, Permutation{0, 2, 3, 1}, 4},
	{"Ub", Permutation{0, 1, 2, 3}, Permutation{0, 3, 1, 2}, 4},
	{"V", Permutation{0, 3, 2, 1}, Permutation{0, 2, 1, 3}, 4},
	{"Y", Permutation{0, 3, 2, 1}, Permutation{0, 1, 3, 2}, 4},
	{"Z", Permutation{0, 1, 2, 3}, Permutation{1, 0, 3, 2}, 2},
}

// DefaultAliases folds the G permutations a recogniser cannot tell apart
// by their first letter onto one canonical label.
var DefaultAliases = map[string]string{
	"Ga": "Ga",
	"Gb": "Gb",
	"Gc": "Ga",
	"Gd": "Gb",
}

// ValidateCases checks a case list and alias map: at least one case,
// non-empty unique labels, positive weights, bijective permutations, and
// alias targets that name registered cases.
func ValidateCases(cases []Case, aliases map[string]string) error {
	if len(cases) == 0 {
		return ErrEmptyTable
	}
	seen := make(map[string]bool, len(cases))
	for i, c := range cases {
		if c.Label == "" {
			return fmt.Errorf("%w: case %d", ErrEmptyLabel, i)
		}
		if seen[c.Label] {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, c.Label)
		}
		seen[c.Label] = true
		if c.Weight <= 0 {
			return fmt.Errorf("%w: %q has weight %d", ErrInvalidWeight, c.Label, c.Weight)
		}
		if !c.Corners.IsValid() {
			return fmt.Errorf("%w: %q corners %v", ErrInvalidPermutation, c.Label, c.Corners)
		}
		if !c.Edges.IsValid() {
			return fmt.Errorf("%w: %q edges %v", ErrInvalidPermutation, c.Label, c.Edges)
		}
	}
	for from, to := range aliases {
		if to == "" {
			return fmt.Errorf("%w: alias %q", ErrEmptyLabel, from)
		}
		if !seen[to] {
			return fmt.Errorf("%w: alias %q -> %q", ErrUnknownCase, from, to)
		}
	}
	return nil
}

// Table is an immutable, validated registry of cases and aliases.
type Table struct {
	cases   []Case
	index   map[string]int
	aliases map[string]string
	total   int
}

// NewTable validates and copies the given cases and aliases.
func NewTable(cases []Case, aliases map[string]string) (*Table, error) {
	if err := ValidateCases(cases, aliases); err != nil {
		return nil, err
	}
	t := &Table{
		cases:   append([]Case(nil), cases...),
		index:   make(map[string]int, len(cases)),
		aliases: make(map[string]string, len(aliases)),
	}
	for i, c := range t.cases {
		t.index[c.Label] = i
		t.total += c.Weight
	}
	for k, v := range aliases {
		t.aliases[k] = v
	}
	return t, nil
}

// DefaultTable returns a Table of DefaultCases and DefaultAliases.
// It panics if they do not validate.
func DefaultTable() *Table {
	t, err := NewTable(DefaultCases, DefaultAliases)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the case with the given label.
func (t *Table) Lookup(label string) (Case, bool) {
	i, ok := t.index[label]
	if !ok {
		return Case{}, false
	}
	return t.cases[i], true
}

// Cases returns a copy of the registry in registry order.
func (t *Table) Cases() []Case {
	return append([]Case(nil), t.cases...)
}

// Len returns the number of registered cases.
func (t *Table) Len() int {
	return len(t.cases)
}

// TotalWeight returns the sum of all case weights.
func (t *Table) TotalWeight() int {
	return t.total
}

// Canonical resolves label through the alias map, falling back to the
// label itself.
func (t *Table) Canonical(label string) string {
	if to, ok := t.aliases[label]; ok {
		return to
	}
	return label
}

// Key returns the character the user must type to recognise label:
// the first character of its canonical label, lowercased.
func (t *Table) Key(label string) rune {
	r, _ := utf8.DecodeRuneInString(t.Canonical(label))
	return unicode.ToLower(r)
}

// Probability returns the draw probability of label, or 0 if unknown.
func (t *Table) Probability(label string) float64 {
	c, ok := t.Lookup(label)
	if !ok {
		return 0
	}
	return float64(c.Weight) / float64(t.total)
}

// Keys returns the distinct recognition keys in registry order.
func (t *Table) Keys() string {
	var b strings.Builder
	for _, c := range t.cases {
		k := t.Key(c.Label)
		if !strings.ContainsRune(b.String(), k) {
			b.WriteRune(k)
		}
	}
	return b.String()
}
