package pll

// Draw is the result of one Sampler.Draw call.
type Draw struct {
	Label       string      `json:"label"`    // raw case label, before alias resolution.
	Rotation    int         `json:"rotation"` // index into Rotations.
	Arrangement Arrangement `json:"arrangement"`
}
