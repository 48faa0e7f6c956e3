package audit

// chiSquare computes Pearson's statistic Σ (O - E)² / E over all cases,
// where E = n * expected probability.
func chiSquare(cases []CaseFrequency, n int) float64 {
	var sum float64
	for _, c := range cases {
		e := float64(n) * c.Expected
		if e == 0 {
			continue
		}
		d := float64(c.Observed) - e
		sum += d * d / e
	}
	return sum
}

// chiSquareCritical999 holds the 0.999 quantile of the chi-square
// distribution for 1..30 degrees of freedom.
var chiSquareCritical999 = [...]float64{
	0,
	10.828, 13.816, 16.266, 18.467, 20.515, 22.458, 24.322, 26.124, 27.877, 29.588,
	31.264, 32.909, 34.528, 36.123, 37.697, 39.252, 40.790, 42.312, 43.820, 45.315,
	46.797, 48.268, 49.728, 51.179, 52.620, 54.052, 55.476, 56.892, 58.301, 59.703,
}

// Plausible reports whether the chi-square statistic is below the 0.999
// critical value for the report's degrees of freedom. Tables with more
// than 31 cases are not covered and always report false.
func (r Report) Plausible() bool {
	df := r.DegreesOfFreedom()
	if df < 1 || df >= len(chiSquareCritical999) {
		return false
	}
	return r.ChiSquare < chiSquareCritical999[df]
}
