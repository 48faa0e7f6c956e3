package pll

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalCornersFollowColorCycle(t *testing.T) {
	corners := CanonicalCorners()
	for i, c := range corners {
		next := corners[(i+1)%4]
		assert.Equal(t, c.Right, next.Left, "corner %d right must match corner %d left", i, (i+1)%4)
		assert.NotEqual(t, Yellow, c.Left)
		assert.NotEqual(t, Yellow, c.Right)
	}
	assert.Equal(t, Corner{Orange, Blue}, corners[0])
}

func TestCanonicalEdges(t *testing.T) {
	assert.Equal(t, [4]Edge{{Blue}, {Red}, {Green}, {Orange}}, CanonicalEdges())
}

func TestEdgesSitBetweenCorners(t *testing.T) {
	// Edge i lies between corner i and corner i+1.
	c, e := CanonicalCorners(), CanonicalEdges()
	for i := 0; i < 4; i++ {
		assert.Equal(t, c[i].Right, e[i].Color)
	}
}

func TestPermuteIdentity(t *testing.T) {
	a := Solved()
	assert.Equal(t, a, a.Permute(Identity, Identity))
}

func TestPermuteReindexes(t *testing.T) {
	a := Solved().Permute(Permutation{3, 0, 2, 1}, Permutation{2, 1, 3, 0})
	c, e := CanonicalCorners(), CanonicalEdges()
	assert.Equal(t, [4]Corner{c[3], c[0], c[2], c[1]}, a.Corners)
	assert.Equal(t, [4]Edge{e[2], e[1], e[3], e[0]}, a.Edges)
}

func TestArrangementJSON(t *testing.T) {
	data, err := json.Marshal(Solved())
	require.NoError(t, err)

	var got Arrangement
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, Solved(), got)
	assert.Contains(t, string(data), `{"left":"Orange","right":"Blue"}`)
}

func TestPieceString(t *testing.T) {
	assert.Equal(t, "Orange/Blue", Corner{Orange, Blue}.String())
	assert.Equal(t, "Green", Edge{Green}.String())
}
