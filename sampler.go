package pll

import (
	"math/rand"
	"time"
)

// Rand is the random source used for sampling. *rand.Rand satisfies it.
// Intn returns a uniform integer in [0, n).
type Rand interface {
	Intn(n int) int
}

// SamplerConfig configures a Sampler.
// Zero values produce sensible defaults; see field comments.
type SamplerConfig struct {
	Table        *Table // nil → DefaultTable()
	Rand         Rand   // nil → time-seeded source; drives case selection
	RotationRand Rand   // nil → Rand; drives AUF choice
}

// Sampler draws weighted cases and composes them with a random AUF.
type Sampler struct {
	table        *Table
	rng          Rand
	rotationRand Rand
}

// NewSampler creates a Sampler from the given config.
// Zero-value fields are filled with defaults.
func NewSampler(cfg SamplerConfig) (*Sampler, error) {
	t := cfg.Table
	if t == nil {
		t = DefaultTable()
	}
	if t.Len() == 0 || t.TotalWeight() <= 0 {
		return nil, ErrEmptyTable
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rot := cfg.RotationRand
	if rot == nil {
		rot = rng
	}

	return &Sampler{table: t, rng: rng, rotationRand: rot}, nil
}

// Table returns the sampler's case table.
func (s *Sampler) Table() *Table {
	return s.table
}

// Draw selects a case by weight, applies it to the solved layer, then
// applies a uniformly chosen AUF. The returned label is the raw case
// label; alias resolution is left to the caller.
func (s *Sampler) Draw() Draw {
	c := s.Select(s.rng.Intn(s.table.TotalWeight()))
	i, rot := randomRotation(s.rotationRand)

	// Case first, then the AUF, in a single re-indexing of the solved layer.
	return Draw{
		Label:       c.Label,
		Rotation:    i,
		Arrangement: Solved().Permute(c.Corners.Then(rot.Corners), c.Edges.Then(rot.Edges)),
	}
}

// Select returns the case chosen by the draw value r in [0, TotalWeight()):
// walk the registry subtracting weights until r falls inside a case's
// weight. Ties resolve by registry order.
func (s *Sampler) Select(r int) Case {
	for _, c := range s.table.cases {
		if r < c.Weight {
			return c
		}
		r -= c.Weight
	}
	// r past the total weight: the last case absorbs it.
	return s.table.cases[len(s.table.cases)-1]
}
