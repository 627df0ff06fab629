package lottery

import (
	"errors"
	"math"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("MOON_LOTTO")
	if !errors.Is(err, ErrUnknownLottery) {
		t.Fatalf("Expected ErrUnknownLottery, got %v", err)
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	cfg, err := Lookup("eurojackpot")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if cfg.Type != Eurojackpot {
		t.Errorf("Expected %s, got %s", Eurojackpot, cfg.Type)
	}
}

func TestTheoreticalProbability(t *testing.T) {
	tests := []struct {
		name      string
		lotto     Type
		secondary bool
		winClass  *int
		position  *int
		want      float64
	}{
		{"eurojackpot main", Eurojackpot, false, nil, nil, 0.1},
		{"eurojackpot stars", Eurojackpot, true, nil, nil, 2.0 / 12.0},
		{"keno", EstKeno, false, nil, nil, 20.0 / 64.0},
		{"no secondary pool", EstKeno, true, nil, nil, 0},
		{"bingo centre", EstBingo, false, intPtr(5), nil, 6.0 / 15.0},
		{"bingo unknown win class", EstBingo, false, intPtr(9), nil, 6.0 / 75.0},
		{"jokker position", EstJokker, false, intPtr(1), intPtr(1), 0.1},
		{"primitiva reintegro", ESLaPrimitiva, false, intPtr(2), nil, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Lookup(tt.lotto)
			if err != nil {
				t.Fatalf("Lookup failed: %v", err)
			}
			got := cfg.TheoreticalProbability(tt.secondary, tt.winClass, tt.position)
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("Expected %.4f, got %.4f", tt.want, got)
			}
		})
	}
}

func TestNumberRange(t *testing.T) {
	cfg, _ := Lookup(EstBingo)
	r := cfg.NumberRange(false, intPtr(5))
	if r.Min != 31 || r.Max != 45 {
		t.Errorf("Expected 31-45, got %d-%d", r.Min, r.Max)
	}

	keno, _ := Lookup(EstKeno)
	r = keno.NumberRange(true, nil)
	if r.Min != 1 || r.Max != 64 {
		t.Errorf("Expected primary fallback 1-64, got %d-%d", r.Min, r.Max)
	}
	if !r.Contains(64) || r.Contains(65) {
		t.Errorf("Contains bounds are wrong for %v", r)
	}
	if len(r.Numbers()) != 64 {
		t.Errorf("Expected 64 numbers, got %d", len(r.Numbers()))
	}
}

func TestTypes_Sorted(t *testing.T) {
	types := Types()
	if len(types) != len(registry) {
		t.Fatalf("Expected %d types, got %d", len(registry), len(types))
	}
	for i := 1; i < len(types); i++ {
		if types[i-1] >= types[i] {
			t.Errorf("Types not sorted at %d: %s >= %s", i, types[i-1], types[i])
		}
	}
}
