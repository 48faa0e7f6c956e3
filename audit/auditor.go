package audit

import (
	"context"
	"errors"

	"github.com/sky-flux/pll"
)

var (
	// ErrNoSampler is returned when Estimate is called without a sampler.
	ErrNoSampler = errors.New("audit: no sampler provided")

	// ErrTooFewDraws is returned when Draws is smaller than the table.
	ErrTooFewDraws = errors.New("audit: fewer draws than cases in the table")
)

// Config configures an Auditor.
// Zero values are replaced with sensible defaults.
type Config struct {
	Draws      int `json:"draws"`       // default 100000
	CheckEvery int `json:"check_every"` // context check interval, default 1024
}

// Auditor runs sampling audits.
type Auditor struct {
	draws      int
	checkEvery int
}

// NewAuditor creates an Auditor with the given config.
// Zero-valued fields receive defaults: Draws=100000, CheckEvery=1024.
func NewAuditor(cfg Config) *Auditor {
	a := &Auditor{
		draws:      cfg.Draws,
		checkEvery: cfg.CheckEvery,
	}
	if a.draws == 0 {
		a.draws = 100000
	}
	if a.checkEvery == 0 {
		a.checkEvery = 1024
	}
	return a
}

// Estimate draws from s and tallies the results. It checks for context
// cancellation every CheckEvery draws.
func (a *Auditor) Estimate(ctx context.Context, s *pll.Sampler) (Report, error) {
	if s == nil {
		return Report{}, ErrNoSampler
	}
	table := s.Table()
	if a.draws < table.Len() {
		return Report{}, ErrTooFewDraws
	}

	t := newTally(table)
	for i := 0; i < a.draws; i++ {
		if i%a.checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Report{}, err
			}
		}
		t.add(s.Draw())
	}
	return t.report(table), nil
}
