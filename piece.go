package pll

import "fmt"

// Corner holds the two side-facing stickers of a last-layer corner,
// as seen looking at the corner from outside the cube.
type Corner struct {
	Left  Sticker `json:"left"`
	Right Sticker `json:"right"`
}

// Edge holds the single side-facing sticker of a last-layer edge.
type Edge struct {
	Color Sticker `json:"color"`
}

// Arrangement is the ordered set of last-layer pieces after a case and
// an AUF have been applied. It is what gets drawn.
type Arrangement struct {
	Corners [4]Corner `json:"corners"`
	Edges   [4]Edge   `json:"edges"`
}

// CanonicalCorners returns the solved corners. Adjacent colours follow
// the cycle orange→blue→red→green→orange.
func CanonicalCorners() [4]Corner {
	return [4]Corner{
		{Orange, Blue},
		{Blue, Red},
		{Red, Green},
		{Green, Orange},
	}
}

// CanonicalEdges returns the solved edges.
func CanonicalEdges() [4]Edge {
	return [4]Edge{{Blue}, {Red}, {Green}, {Orange}}
}

// Solved returns the arrangement of a solved last layer.
func Solved() Arrangement {
	return Arrangement{Corners: CanonicalCorners(), Edges: CanonicalEdges()}
}

// Permute re-indexes a through the given corner and edge permutations:
// position i takes the piece currently at cp[i] (resp. ep[i]).
func (a Arrangement) Permute(cp, ep Permutation) Arrangement {
	var out Arrangement
	for i := 0; i < 4; i++ {
		out.Corners[i] = a.Corners[cp[i]]
		out.Edges[i] = a.Edges[ep[i]]
	}
	return out
}

func (c Corner) String() string {
	return fmt.Sprintf("%s/%s", c.Left, c.Right)
}

func (e Edge) String() string {
	return e.Color.String()
}
