package automation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/san-kum/mazegen/internal/config"
	"github.com/san-kum/mazegen/internal/experiment"
	"github.com/san-kum/mazegen/internal/export"
	"github.com/san-kum/mazegen/internal/maze"
	"github.com/san-kum/mazegen/internal/storage"
	"gopkg.in/yaml.v3"
)

// ErrEmptyScenario is returned for a scenario with no steps.
var ErrEmptyScenario = errors.New("automation: scenario has no steps")

// Scenario is a scripted list of mazes to generate.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep generates one maze. Fields left unset keep the values of
// Preset, or of the default config when no preset is named.
type ScenarioStep struct {
	Name   string   `yaml:"name"`
	Preset string   `yaml:"preset"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Start  []int    `yaml:"start"`
	Bias   *float64 `yaml:"bias"`
	Seed   int64    `yaml:"seed"`
	// Save stores the run in the scenario's store.
	Save bool `yaml:"save"`
	// Export lists output files, relative to the scenario output
	// directory; the format follows each extension.
	Export []string `yaml:"export"`
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyScenario)
	}
	return &scenario, nil
}

// Config resolves the step over its preset.
func (s ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		if cfg = config.GetPreset(s.Preset); cfg == nil {
			return nil, fmt.Errorf("%w: unknown preset %q", config.ErrInvalid, s.Preset)
		}
	}
	if s.Width > 0 {
		cfg.Width = s.Width
	}
	if s.Height > 0 {
		cfg.Height = s.Height
	}
	if s.Start != nil {
		if len(s.Start) != 2 {
			return nil, fmt.Errorf("%w: start needs two coordinates, got %v", config.ErrInvalid, s.Start)
		}
		cfg.Start = config.StartConfig{X: s.Start[0], Y: s.Start[1]}
	}
	if s.Bias != nil {
		cfg.Bias = *s.Bias
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	return cfg, cfg.Validate()
}

// Runner executes scenarios.
type Runner struct {
	Store    *storage.Store
	Registry *experiment.Registry
	// OutDir is where step exports are written.
	OutDir string
	Logger *log.Logger
}

// StepResult is the outcome of one step.
type StepResult struct {
	Name   string
	RunID  string
	Meta   storage.RunMetadata
	Result *maze.Result
	Files  []string
}

// RunScenario executes all steps in order and stops at the first failure,
// returning the steps completed so far.
func (r *Runner) RunScenario(ctx context.Context, scenario *Scenario) ([]StepResult, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	registry := r.Registry
	if registry == nil {
		registry = experiment.NewRegistry()
	}

	results := make([]StepResult, 0, len(scenario.Steps))
	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		name := step.Name
		if name == "" {
			name = fmt.Sprintf("%s_%d", scenario.Name, i+1)
		}
		logger.Printf("step %d/%d: %s", i+1, len(scenario.Steps), name)

		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		rc, err := cfg.RenderConfig()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		exp := experiment.New(experiment.FromConfig(name, cfg))
		if err := exp.Setup(); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}
		res, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Name: name, Meta: exp.Metadata(res), Result: res}
		if step.Save {
			if r.Store == nil {
				return results, fmt.Errorf("step %d: save requested without a store", i+1)
			}
			id, err := r.Store.Save(sr.Meta, res.Events)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			sr.RunID, sr.Meta.ID = id, id
			logger.Printf("saved %s", id)
		}

		out := experiment.Output{
			Graph:     exp.Graph(),
			Start:     res.Start,
			Events:    res.Events,
			Meta:      &sr.Meta,
			Render:    rc,
			GIF:       export.GIFOptions{Delay: cfg.Playback.GIFDelay, Step: cfg.Playback.GIFStep},
			Entrances: true,
		}
		for _, file := range step.Export {
			path := filepath.Join(r.OutDir, file)
			if err := registry.WriteFile(path, out); err != nil {
				return results, fmt.Errorf("step %d export: %w", i+1, err)
			}
			sr.Files = append(sr.Files, path)
			logger.Printf("wrote %s", path)
		}

		results = append(results, sr)
	}
	return results, nil
}
