// Package render turns maze connection events into something to look at.
//
// [Walls] is the visual model: every cell starts with four walls and each
// event opens exactly the wall shared by its two cells. Opening a wall that
// is already open is an error, which keeps replays honest about event order.
// [Text] draws walls with ASCII for terminals; [Image] rasterizes them with a
// [Config] holding cell size, wall thickness, margin and palette.
package render
