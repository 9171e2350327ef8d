// Package render draws simulation snapshots as text.
//
// Board uses one glyph per cell:
//
//	.  free
//	#  obstacle
//	*  path
//	S  start
//	G  goal
//
// Start and goal are drawn over path and obstacle cells. StyledBoard renders the
// same glyphs with lipgloss colours: free black, path blue, start green, goal red,
// obstacle white. Writer is a simulation.Renderer that prints either form with a
// "Step i / n" heading and a status line.
package render
