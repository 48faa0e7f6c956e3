package pll

// Rotation is an AUF: a turn of the whole last layer about the vertical
// axis, expressed as a re-indexing of corners and edges.
type Rotation struct {
	Corners Permutation `json:"corners"`
	Edges   Permutation `json:"edges"`
}

// Rotations are the four AUFs: identity, then one, two and three
// quarter turns. Each is equally likely.
var Rotations = [4]Rotation{
	{Permutation{0, 1, 2, 3}, Permutation{0, 1, 2, 3}},
	{Permutation{1, 2, 3, 0}, Permutation{1, 2, 3, 0}},
	{Permutation{2, 3, 0, 1}, Permutation{2, 3, 0, 1}},
	{Permutation{3, 0, 1, 2}, Permutation{3, 0, 1, 2}},
}

// Apply re-indexes a through r. The case shown does not change, only
// which pieces face the viewer.
func (r Rotation) Apply(a Arrangement) Arrangement {
	return a.Permute(r.Corners, r.Edges)
}

// randomRotation picks one of the four AUFs uniformly.
func randomRotation(rng Rand) (int, Rotation) {
	i := rng.Intn(len(Rotations))
	return i, Rotations[i]
}
