package automation

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"
)

func TestBiases(t *testing.T) {
	s := &BiasSweep{BiasMin: 0, BiasMax: 1, Steps: 5}
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	got := s.Biases()
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("bias %d = %v, want %v", i, got[i], want[i])
		}
	}

	one := (&BiasSweep{BiasMin: 0.3, BiasMax: 0.9, Steps: 1}).Biases()
	if len(one) != 1 || one[0] != 0.3 {
		t.Errorf("single step = %v", one)
	}
}

func TestBiasSweepRun(t *testing.T) {
	var calls int
	s := &BiasSweep{
		Width: 12, Height: 12,
		BiasMin: 0, BiasMax: 1, Steps: 3,
		Runs: 4, SeedStart: 10,
		Progress: func(done, total int, bias float64) { calls++ },
	}
	results, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(results) != 3 || calls != 3 {
		t.Fatalf("results %d progress calls %d", len(results), calls)
	}
	for _, r := range results {
		if r.Summary.Runs != 4 {
			t.Errorf("bias %v: %d runs", r.Bias, r.Summary.Runs)
		}
		if r.Summary.LongestPath <= 0 {
			t.Errorf("bias %v: no longest path", r.Bias)
		}
	}
	// always extending the newest branch gives fewer dead ends than always
	// taking the oldest candidate
	if results[0].Summary.DeadEndRatio >= results[2].Summary.DeadEndRatio {
		t.Errorf("dead-end ratio at bias 0 (%v) not below bias 1 (%v)",
			results[0].Summary.DeadEndRatio, results[2].Summary.DeadEndRatio)
	}

	again, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if again[1].Summary != results[1].Summary {
		t.Error("sweep not reproducible")
	}

	path := filepath.Join(t.TempDir(), "sweep.png")
	if err := SweepChart(path, results); err != nil {
		t.Errorf("chart failed: %v", err)
	}
}

func TestBiasSweepInvalid(t *testing.T) {
	tests := []BiasSweep{
		{Width: 3, Height: 3, Steps: 0, Runs: 1, BiasMax: 1},
		{Width: 3, Height: 3, Steps: 2, Runs: 0, BiasMax: 1},
		{Width: 3, Height: 3, Steps: 2, Runs: 1, BiasMin: 0.8, BiasMax: 0.2},
		{Width: 3, Height: 3, Steps: 2, Runs: 1, BiasMin: -1, BiasMax: 1},
		{Width: 3, Height: 3, Steps: 2, Runs: 1, BiasMin: 0, BiasMax: math.NaN()},
	}
	for i, s := range tests {
		if _, err := s.Run(context.Background()); !errors.Is(err, ErrInvalidSweep) {
			t.Errorf("case %d: expected ErrInvalidSweep, got %v", i, err)
		}
	}
}

func TestBiasSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &BiasSweep{Width: 4, Height: 4, BiasMax: 1, Steps: 2, Runs: 2}
	if _, err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
