// Package audit checks a pll case table offline.
//
// It provides two capabilities:
//
//   - [Auditor.Estimate] draws many cases from a [pll.Sampler] and compares
//     the observed frequency of each case with weight/total, reporting a
//     chi-square statistic and per-case deviations.
//
//   - [Parity] recomputes the parity of every corner and edge permutation
//     both by swap counting and by cycle decomposition, and reports any
//     disagreement.
//
// # Usage
//
//	a := audit.NewAuditor(audit.Config{})
//	report, err := a.Estimate(ctx, sampler)
//	if !report.Within(0.01) { ... }
//
// Nothing here runs on the live sampling path; these are table-validation
// tools for tests and offline tooling.
package audit
