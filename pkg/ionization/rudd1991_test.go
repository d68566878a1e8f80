package ionization

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/integrate"

	"github.com/san-kum/escat/internal/constants"
)

func TestRuddXSec_TotalPositive(t *testing.T) {
	r := NewRuddXSec(100.0)
	total := r.TotalXSec()
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		t.Errorf("TotalXSec = %e, want positive finite", total)
	}
}

func TestRuddXSec_DifferentialTotalConsistency(t *testing.T) {
	const T = 100.0
	r := NewRuddXSec(T)

	// Integrate the SDCS over the secondary-electron range
	// [0, (T-I)/2]. W=0 itself is NaN in the model (g3 divides by w),
	// so the grid starts just above it.
	wMax := (T - constants.IonizationEnergyH) / 2
	const n = 4000
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = 1e-3 + (wMax-1e-3)*float64(i)/float64(n-1)
		ys[i] = r.SinglyDifferentialXSecW(xs[i])
	}
	got := integrate.Trapezoidal(xs, ys)

	want := r.TotalXSec()
	if rel := math.Abs(got-want) / want; rel > 0.05 {
		t.Errorf("integrated SDCS = %e, TotalXSec = %e (rel %e)", got, want, rel)
	}
}

func TestRuddXSec_SDCSUnguardedAtZero(t *testing.T) {
	r := NewRuddXSec(100.0)
	if v := r.SinglyDifferentialXSecW(0.0); !math.IsNaN(v) {
		t.Errorf("SinglyDifferentialXSecW(0) = %e, want NaN (unguarded)", v)
	}
}

func TestRuddXSec_DoublyDifferential(t *testing.T) {
	r := NewRuddXSec(100.0)
	for _, theta := range []float64{0.1, math.Pi / 2, 2.5} {
		v := r.DoublyDifferentialXSec(10.0, theta)
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("DoublyDifferentialXSec(10, %v) = %e, want positive finite", theta, v)
		}
	}

	// The binary-encounter peak sits near cos(theta) = g2, so the DDCS
	// at the peak angle dominates the backward direction.
	peak := math.Acos(r.g2(10.0))
	if r.DoublyDifferentialXSec(10.0, peak) <= r.DoublyDifferentialXSec(10.0, 3.0) {
		t.Error("DDCS not peaked at the binary-encounter angle")
	}
}

func TestRuddXSec_Idempotent(t *testing.T) {
	r := NewRuddXSec(250.0)
	if r.TotalXSec() != r.TotalXSec() {
		t.Error("repeated TotalXSec calls differ")
	}
	if r.DoublyDifferentialXSec(12.0, 1.0) != r.DoublyDifferentialXSec(12.0, 1.0) {
		t.Error("repeated DoublyDifferentialXSec calls differ")
	}
}
