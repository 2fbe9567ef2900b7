package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/maze"
)

func generate(t *testing.T, w, h int, seed int64) (RunMetadata, []maze.Event) {
	t.Helper()
	g, err := grid.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	events, err := maze.New(g, rand.New(rand.NewSource(seed))).Generate(grid.Cell{})
	if err != nil {
		t.Fatal(err)
	}
	meta := RunMetadata{
		Width:   w,
		Height:  h,
		Bias:    maze.DefaultBias,
		Seed:    seed,
		Metrics: map[string]float64{"dead_ends": 3},
	}
	return meta, events
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta, events := generate(t, 5, 4, 42)
	runID, err := st.Save(meta, events)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !strings.HasPrefix(runID, "maze_") || len(runID) != len("maze_")+8 {
		t.Errorf("unexpected run id %q", runID)
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Seed)
	}
	if loaded.Events != len(events) {
		t.Errorf("expected %d events, got %d", len(events), loaded.Events)
	}
	if loaded.Metrics["dead_ends"] != 3 {
		t.Errorf("expected dead_ends 3, got %f", loaded.Metrics["dead_ends"])
	}
	if loaded.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}

	got, err := st.LoadEvents(runID)
	if err != nil {
		t.Fatalf("load events failed: %v", err)
	}
	if len(got) != len(events) {
		t.Fatalf("expected %d events, got %d", len(events), len(got))
	}
	for i := range events {
		if got[i] != events[i] {
			t.Errorf("event %d: got %v, want %v", i, got[i], events[i])
		}
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	st := New(t.TempDir())
	meta, events := generate(t, 2, 2, 1)
	meta.ID = "custom"

	runID, err := st.Save(meta, events)
	if err != nil {
		t.Fatal(err)
	}
	if runID != "custom" {
		t.Errorf("expected custom, got %s", runID)
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	for seed := int64(1); seed <= 3; seed++ {
		meta, events := generate(t, 3, 3, seed)
		if _, err := st.Save(meta, events); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].Timestamp.Before(runs[i-1].Timestamp) {
			t.Error("runs not ordered by timestamp")
		}
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	meta, events := generate(t, 2, 1, 1)
	runID, err := st.Save(meta, events)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}

	data, err := os.ReadFile(filepath.Join(runDir, "events.csv"))
	if err != nil {
		t.Fatalf("events.csv not created: %v", err)
	}
	want := "from_x,from_y,to_x,to_y\n0,0,1,0\n"
	if string(data) != want {
		t.Errorf("events.csv = %q, want %q", data, want)
	}
}

func TestStoreNotFound(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("maze_missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Load: expected ErrRunNotFound, got %v", err)
	}
	if _, err := st.LoadEvents("maze_missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("LoadEvents: expected ErrRunNotFound, got %v", err)
	}
	if err := st.Delete("maze_missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Delete: expected ErrRunNotFound, got %v", err)
	}
}

func TestStoreRunIDStaysInBaseDir(t *testing.T) {
	base := t.TempDir()
	st := New(filepath.Join(base, "runs"))
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "metadata.json"), []byte(`{"id":"outside"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := st.Load(".."); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound for .., got %v", err)
	}
}

func TestLoadRunValidates(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	meta, events := generate(t, 4, 4, 7)
	runID, err := st.Save(meta, events)
	if err != nil {
		t.Fatal(err)
	}

	run, err := st.LoadRun(runID)
	if err != nil {
		t.Fatalf("load run failed: %v", err)
	}
	if run.Graph.Len() != 16 || len(run.Events) != 15 {
		t.Errorf("unexpected run %dx%d with %d events", run.Graph.Width(), run.Graph.Height(), len(run.Events))
	}

	// drop the last event so the maze no longer spans the grid
	path := filepath.Join(tmpDir, runID, "events.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteEvents(f, events[:len(events)-1]); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if _, err := st.LoadRun(runID); !errors.Is(err, maze.ErrNotSpanning) {
		t.Errorf("expected ErrNotSpanning, got %v", err)
	}
}

func TestStoreDelete(t *testing.T) {
	st := New(t.TempDir())
	meta, events := generate(t, 2, 2, 3)
	runID, err := st.Save(meta, events)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Delete(runID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := st.Load(runID); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("run still present: %v", err)
	}
}

func TestReadEventsErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"short row", "from_x,from_y,to_x,to_y\n0,0,1\n"},
		{"not a number", "from_x,from_y,to_x,to_y\n0,0,x,0\n"},
	}
	for _, tt := range tests {
		if _, err := ReadEvents(strings.NewReader(tt.in)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}

	events, err := ReadEvents(strings.NewReader(""))
	if err != nil || len(events) != 0 {
		t.Errorf("empty input: %v %v", events, err)
	}
}

func TestWriteJSON(t *testing.T) {
	meta, events := generate(t, 2, 1, 1)
	meta.ID = "maze_test"

	var buf bytes.Buffer
	if err := WriteJSON(&buf, &meta, events); err != nil {
		t.Fatal(err)
	}

	var got ExportData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != "maze_test" || got.Steps != 1 || got.Width != 2 {
		t.Errorf("unexpected export %+v", got)
	}
	if !strings.Contains(buf.String(), `"from": {`) {
		t.Errorf("events not nested objects:\n%s", buf.String())
	}
}
