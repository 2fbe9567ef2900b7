package export

import "errors"

var (
	// ErrUnknownFormat indicates a file extension with no writer.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrNoData indicates a chart with nothing to plot.
	ErrNoData = errors.New("export: no data to plot")
)
