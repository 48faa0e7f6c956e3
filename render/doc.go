// Package render draws a pll.Arrangement as a 2D last-layer diagram.
//
// The diagram shows what a solver sees holding the cube corner-first:
// the yellow top, the three side stickers of the viewer-left face, the
// three side stickers of the viewer-right face, and the two front-face
// colours below them.
//
//	t := render.NewTerminal(render.Options{})
//	sess, err := pll.NewSession(pll.SessionConfig{Renderer: t})
//	fmt.Println(t.Frame())
package render
