// Package export writes finished or partial mazes to files: SVG, PNG and
// JPEG stills, an animated GIF replaying the connection events, and
// gonum/plot charts of generation statistics.
package export
