package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/mazegen/internal/maze"
)

// ExportData is the JSON form of a run.
type ExportData struct {
	ID      string             `json:"id"`
	Width   int                `json:"width"`
	Height  int                `json:"height"`
	Start   [2]int             `json:"start"`
	Bias    float64            `json:"bias"`
	Seed    int64              `json:"seed"`
	Steps   int                `json:"steps"`
	Events  []maze.Event       `json:"events"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

func NewExportData(meta *RunMetadata, events []maze.Event) ExportData {
	return ExportData{
		ID:      meta.ID,
		Width:   meta.Width,
		Height:  meta.Height,
		Start:   [2]int{meta.StartX, meta.StartY},
		Bias:    meta.Bias,
		Seed:    meta.Seed,
		Steps:   len(events),
		Events:  events,
		Metrics: meta.Metrics,
	}
}

// WriteJSON writes the run as indented JSON.
func WriteJSON(out io.Writer, meta *RunMetadata, events []maze.Event) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(meta, events))
}

func ExportJSON(path string, meta *RunMetadata, events []maze.Event) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := WriteJSON(file, meta, events); err != nil {
		return err
	}
	return file.Close()
}

func ExportJSONStdout(meta *RunMetadata, events []maze.Event) error {
	return WriteJSON(os.Stdout, meta, events)
}
