package constants

import (
	"math"
	"testing"
)

func TestDecayConstTritium(t *testing.T) {
	// ln2 over a 12.32-year half-life, about 1.783e-9 s^-1.
	if rel := math.Abs(DecayConstTritium-1.7828e-9) / 1.7828e-9; rel > 1e-4 {
		t.Errorf("DecayConstTritium = %e, want ~1.7828e-9", DecayConstTritium)
	}
}
