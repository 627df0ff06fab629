package stats

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		v      float64
		places int
		want   float64
	}{
		{1.23456, 2, 1.23},
		{1.235, 1, 1.2},
		{-0.15551, 4, -0.1555},
		{math.NaN(), 2, 0},
		{math.Inf(1), 2, 0},
	}
	for _, tt := range tests {
		if got := Round(tt.v, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.v, tt.places, got, tt.want)
		}
	}
}

func TestPearson(t *testing.T) {
	if r := pearson([]float64{1, 2, 3}, []float64{2, 4, 6}); math.Abs(r-1) > 1e-12 {
		t.Errorf("Expected perfect correlation, got %v", r)
	}
	if r := pearson([]float64{1, 2, 3}, []float64{3, 2, 1}); math.Abs(r+1) > 1e-12 {
		t.Errorf("Expected perfect anti-correlation, got %v", r)
	}
	if r := pearson([]float64{1, 1, 1}, []float64{1, 2, 3}); r != 0 {
		t.Errorf("Expected 0 for a constant series, got %v", r)
	}
	if r := pearson([]float64{1, 2, 3}, []float64{4, 4, 4}); r != 0 {
		t.Errorf("Expected 0 when the second series is constant, got %v", r)
	}
	if r := pearson([]float64{1, 2, 3}, []float64{1, 2}); r != 0 {
		t.Errorf("Expected 0 for series of different length, got %v", r)
	}
	if r := pearson([]float64{0, 1, 0, 1}, []float64{0, 1, 1, 1}); math.Abs(r-0.57735) > 0.001 {
		t.Errorf("Expected r=0.577, got %v", r)
	}
	if r := pearson([]float64{1}, []float64{1}); r != 0 {
		t.Errorf("Expected 0 for a single point, got %v", r)
	}
}

func TestPValues(t *testing.T) {
	if p := correlationPValue(0, 10); math.Abs(p-1) > 1e-9 {
		t.Errorf("Expected p=1 for r=0, got %v", p)
	}
	if p := correlationPValue(0.5, 2); p != 1 {
		t.Errorf("Expected p=1 without degrees of freedom, got %v", p)
	}
	if p := chiSquarePValue(3.841458820694124, 1); math.Abs(p-0.05) > 1e-6 {
		t.Errorf("Expected p=0.05 at the 1-df critical value, got %v", p)
	}
	if p := chiSquarePValue(0, 1); p != 1 {
		t.Errorf("Expected p=1 for a zero statistic, got %v", p)
	}
	if p := normalPValue(1.959963984540054); math.Abs(p-0.05) > 1e-6 {
		t.Errorf("Expected two-sided p=0.05, got %v", p)
	}
	if p := normalPValue(math.NaN()); p != 1 {
		t.Errorf("Expected p=1 for NaN, got %v", p)
	}
}
