package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/maze"
)

// ErrRunNotFound is returned for an ID with no run directory.
var ErrRunNotFound = errors.New("storage: run not found")

const (
	metadataFile = "metadata.json"
	eventsFile   = "events.csv"
)

var eventsHeader = []string{"from_x", "from_y", "to_x", "to_y"}

// Store keeps one directory per run under baseDir.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Name      string             `json:"name,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	StartX    int                `json:"start_x"`
	StartY    int                `json:"start_y"`
	Bias      float64            `json:"bias"`
	Seed      int64              `json:"seed"`
	Events    int                `json:"events"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

func (m RunMetadata) Start() grid.Cell { return grid.Cell{X: m.StartX, Y: m.StartY} }

// Graph builds the grid the run was generated on.
func (m RunMetadata) Graph() (*grid.Graph, error) { return grid.New(m.Width, m.Height) }

// NewID returns a fresh run ID.
func NewID() string {
	return "maze_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// Save writes meta and events as a new run. An empty ID is replaced with
// a fresh one and the timestamp is set to now; the ID is returned.
func (s *Store) Save(meta RunMetadata, events []maze.Event) (string, error) {
	if meta.ID == "" {
		meta.ID = NewID()
	}
	meta.Timestamp = time.Now()
	meta.Events = len(events)

	runDir, err := s.runDir(meta.ID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, eventsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteEvents(csvFile, events); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// WriteEvents writes events as CSV with a header row.
func WriteEvents(out io.Writer, events []maze.Event) error {
	w := csv.NewWriter(out)
	if err := w.Write(eventsHeader); err != nil {
		return err
	}
	for _, ev := range events {
		row := []string{
			strconv.Itoa(ev.From.X), strconv.Itoa(ev.From.Y),
			strconv.Itoa(ev.To.X), strconv.Itoa(ev.To.Y),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadEvents parses CSV written by WriteEvents.
func ReadEvents(in io.Reader) ([]maze.Event, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = len(eventsHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []maze.Event{}, nil
	}

	events := make([]maze.Event, 0, len(records)-1)
	for i, record := range records[1:] {
		var v [4]int
		for j, field := range record {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("row %d: %s: %w", i+2, eventsHeader[j], err)
			}
			v[j] = n
		}
		events = append(events, maze.Event{
			From: grid.Cell{X: v[0], Y: v[1]},
			To:   grid.Cell{X: v[2], Y: v[3]},
		})
	}
	return events, nil
}

// List returns every readable run, oldest first. A missing base directory
// holds no runs.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadEvents(runID string) ([]maze.Event, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(dir, eventsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer f.Close()

	events, err := ReadEvents(f)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return events, nil
}

// Run is a stored run with its grid rebuilt.
type Run struct {
	Meta   *RunMetadata
	Graph  *grid.Graph
	Events []maze.Event
}

// LoadRun loads a run and checks that its events form a complete maze.
func (s *Store) LoadRun(runID string) (*Run, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	events, err := s.LoadEvents(runID)
	if err != nil {
		return nil, err
	}
	g, err := meta.Graph()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if err := maze.Validate(g, meta.Start(), events); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &Run{Meta: meta, Graph: g, Events: events}, nil
}

func (s *Store) Delete(runID string) error {
	dir, err := s.runDir(runID)
	if err != nil {
		return err
	}
	if _, err := os.Stat(filepath.Join(dir, metadataFile)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return err
	}
	return os.RemoveAll(dir)
}

// runDir maps runID to its directory. IDs that are not a single plain
// path element are reported as not found.
func (s *Store) runDir(runID string) (string, error) {
	if runID == "" || runID == "." || runID == ".." || strings.ContainsAny(runID, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrRunNotFound, runID)
	}
	return filepath.Join(s.baseDir, runID), nil
}
