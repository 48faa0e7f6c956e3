package audit

import "math"

// CaseFrequency is the outcome for one case.
type CaseFrequency struct {
	Label    string  `json:"label"`
	Weight   int     `json:"weight"`
	Observed int     `json:"observed"` // number of draws
	Expected float64 `json:"expected"` // weight / total weight
	Share    float64 `json:"share"`    // observed / draws
}

// Deviation returns |Share - Expected|.
func (c CaseFrequency) Deviation() float64 {
	return math.Abs(c.Share - c.Expected)
}

// Report summarizes an Estimate run.
type Report struct {
	Draws     int             `json:"draws"`
	Cases     []CaseFrequency `json:"cases"`
	Rotations [4]int          `json:"rotations"`
	ChiSquare float64         `json:"chi_square"`
}

// Within reports whether every case's share is within tol of its
// expected probability.
func (r Report) Within(tol float64) bool {
	for _, c := range r.Cases {
		if c.Deviation() > tol {
			return false
		}
	}
	return true
}

// MaxDeviation returns the case with the largest |Share - Expected|.
func (r Report) MaxDeviation() CaseFrequency {
	var worst CaseFrequency
	for _, c := range r.Cases {
		if c.Deviation() >= worst.Deviation() {
			worst = c
		}
	}
	return worst
}

// RotationsUniform reports whether each AUF's share is within tol of 1/4.
func (r Report) RotationsUniform(tol float64) bool {
	if r.Draws == 0 {
		return false
	}
	for _, n := range r.Rotations {
		if math.Abs(float64(n)/float64(r.Draws)-0.25) > tol {
			return false
		}
	}
	return true
}

// DegreesOfFreedom returns the chi-square degrees of freedom: cases - 1.
func (r Report) DegreesOfFreedom() int {
	return len(r.Cases) - 1
}
