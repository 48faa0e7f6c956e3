// Package pll implements a recognition trainer for Rubik's-cube PLL
// (permutation of last layer) cases.
//
// pll provides a weighted Case Table, the four AUF rotations, a Sampler
// that draws a case and composes it with a random AUF, and a Session that
// consumes keystrokes until the user has typed the case's recognition key.
// Rendering lives in the pll/render sub-package and the interactive
// terminal front end in pll/tui.
//
// Basic usage:
//
//	s, err := pll.NewSampler(pll.SamplerConfig{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	d := s.Draw()
//	fmt.Println(d.Label, d.Arrangement)
package pll
