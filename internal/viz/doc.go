// Package viz replays maze generation in the terminal.
//
// The package implements the replay viewer on Bubble Tea:
//
//   - [Model]: steps through connection events on a timer, one wall at a time
//   - [Menu]: picks a preset, edits its parameters and launches a [Model]
//   - [Canvas]: Braille canvas that fits large mazes in a small terminal
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space   - Pause/Resume playback
//	N/Right - Step one event forward
//	P/Left  - Step one event back
//	[ ]     - Scrub back/forward by a twentieth of the run
//	+ -     - Events per tick
//	R       - Restart from the fully walled grid
//	V       - Toggle Braille view
//	T       - Cycle color themes
//	G       - Toggle GIF recording
//	?       - Show help overlay
//
// # Recording
//
// While recording, every tick is rasterized with the render package and
// written as a GIF when recording stops or the viewer quits.
package viz
