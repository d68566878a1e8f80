package ionization

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/escat/internal/constants"
)

func TestKim1994_TotalXSecHydrogen(t *testing.T) {
	k, err := NewKim1994(100.0, H)
	if err != nil {
		t.Fatalf("NewKim1994 returned error: %v", err)
	}
	got := k.TotalXSec()

	// Re-derive the published formula independently of the evaluator.
	const (
		binding   = 1.36057e1
		orbitalKE = 1.36057e1
		ni        = 0.4343
		cb        = -2.2473e-2
		cc        = 1.1775
		cd        = -4.6264e-1
		ce        = 8.9064e-2
	)
	tt := 100.0 / binding
	u := orbitalKE / binding
	ratio := constants.RydbergEV / binding
	s := 4.0 * math.Pi * constants.BohrRadius * constants.BohrRadius * ratio * ratio

	tTerm := (tt + 1.0) / 2.0
	d := (cb/2)*(1-math.Pow(tTerm, -2)) +
		(cc/3)*(1-math.Pow(tTerm, -3)) +
		(cd/4)*(1-math.Pow(tTerm, -4)) +
		(ce/5)*(1-math.Pow(tTerm, -5))
	want := s / (tt + u + 1) *
		(d*math.Log(tt) + (2-ni)*((tt-1)/tt-math.Log(tt)/(tt+1)))

	if rel := math.Abs(got-want) / want; rel > 1e-12 {
		t.Errorf("TotalXSec = %e, independent evaluation %e (rel %e)", got, want, rel)
	}

	// Sanity: hydrogen at 100 eV sits a little below the ~0.6e-20 m^2 peak.
	if got < 4e-21 || got > 8e-21 {
		t.Errorf("TotalXSec = %e outside plausible range", got)
	}
}

func TestKim1994_UnsupportedSpecies(t *testing.T) {
	for _, species := range []Species{"Ar", "h", ""} {
		_, err := NewKim1994(100.0, species)
		if err == nil {
			t.Fatalf("NewKim1994(%q) did not fail", species)
		}
		if !errors.Is(err, ErrUnsupportedSpecies) {
			t.Errorf("NewKim1994(%q) error = %v, want ErrUnsupportedSpecies", species, err)
		}
	}
}

func TestKim1994_AllSpecies(t *testing.T) {
	for _, species := range []Species{H, He, H2} {
		k, err := NewKim1994(200.0, species)
		if err != nil {
			t.Fatalf("NewKim1994(%q) returned error: %v", species, err)
		}
		total := k.TotalXSec()
		if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
			t.Errorf("%s: TotalXSec = %e, want positive finite", species, total)
		}
		sdcs := k.SingleDiffXSecW(5.0)
		if sdcs <= 0 || math.IsNaN(sdcs) {
			t.Errorf("%s: SingleDiffXSecW(5) = %e, want positive", species, sdcs)
		}
	}
}

func TestKim1994_OscillatorStrengthForms(t *testing.T) {
	k, err := NewKim1994(100.0, He)
	if err != nil {
		t.Fatalf("NewKim1994 returned error: %v", err)
	}
	// The y and w forms are the same fit under y = 1/(w+1).
	for _, w := range []float64{0.0, 0.5, 1.0, 4.0, 20.0} {
		a := k.DiffOscillatorStrength(1.0 / (w + 1.0))
		b := k.DiffOscillatorStrengthW(w)
		if math.Abs(a-b) > 1e-12*math.Abs(b) {
			t.Errorf("w=%v: forms disagree: %e vs %e", w, a, b)
		}
	}
}

func TestKim1994_Idempotent(t *testing.T) {
	k, err := NewKim1994(100.0, H2)
	if err != nil {
		t.Fatalf("NewKim1994 returned error: %v", err)
	}
	if k.TotalXSec() != k.TotalXSec() {
		t.Error("repeated TotalXSec calls differ")
	}
	if k.SingleDiffXSecW(3.0) != k.SingleDiffXSecW(3.0) {
		t.Error("repeated SingleDiffXSecW calls differ")
	}
}
