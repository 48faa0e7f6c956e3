package pll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotationsArePermutations(t *testing.T) {
	for i, r := range Rotations {
		assert.True(t, r.Corners.IsValid(), "rotation %d corners", i)
		assert.True(t, r.Edges.IsValid(), "rotation %d edges", i)
	}
}

func TestIdentityRotationLeavesArrangement(t *testing.T) {
	assert.Equal(t, Identity, Rotations[0].Corners)
	assert.Equal(t, Identity, Rotations[0].Edges)

	for _, c := range DefaultCases {
		a := Solved().Permute(c.Corners, c.Edges)
		assert.Equal(t, a, Rotations[0].Apply(a), c.Label)
	}
}

func TestRotationsAreQuarterTurnPowers(t *testing.T) {
	a := Solved().Permute(Permutation{0, 3, 1, 2}, Permutation{0, 2, 3, 1})
	quarter := Rotations[1]
	got := a
	for n := 0; n < 4; n++ {
		assert.Equal(t, Rotations[n].Apply(a), got, "%d quarter turns", n)
		got = quarter.Apply(got)
	}
	assert.Equal(t, a, got, "four quarter turns return to start")
}

func TestRotationKeepsPieces(t *testing.T) {
	// An AUF only moves pieces around; it never changes a piece's stickers.
	a := Solved().Permute(Permutation{3, 1, 2, 0}, Permutation{3, 1, 2, 0})
	for _, r := range Rotations {
		rotated := r.Apply(a)
		assert.ElementsMatch(t, a.Corners[:], rotated.Corners[:])
		assert.ElementsMatch(t, a.Edges[:], rotated.Edges[:])
	}
}

func TestRandomRotationUsesSource(t *testing.T) {
	for want := 0; want < 4; want++ {
		i, r := randomRotation(&scriptRand{vals: []int{want}})
		assert.Equal(t, want, i)
		assert.Equal(t, Rotations[want], r)
	}
}
