package pll

import "errors"

// Sentinel errors for the pll package.
// Use errors.Is to check: errors.Is(err, pll.ErrInvalidPermutation)
var (
	ErrInvalidSticker     = errors.New("pll: invalid sticker")
	ErrInvalidPermutation = errors.New("pll: not a permutation of {0,1,2,3}")
	ErrInvalidWeight      = errors.New("pll: case weight must be positive")
	ErrEmptyLabel         = errors.New("pll: empty case label")
	ErrDuplicateLabel     = errors.New("pll: duplicate case label")
	ErrUnknownCase        = errors.New("pll: unknown case")
	ErrEmptyTable         = errors.New("pll: case table is empty")
	ErrNoSampler          = errors.New("pll: session requires a sampler")
)
