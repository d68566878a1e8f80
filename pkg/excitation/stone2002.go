package excitation

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// stateTable is one tabulated dataset: (energy, cross-section) pairs
// sorted by increasing energy, plus the state's excitation threshold.
type stateTable struct {
	label     string
	threshold float64      // [eV]
	points    [][2]float64 // (energy [eV], cross-section [m^2])
}

// lookup pairs a threshold with a fitted interpolant. Predict clamps to
// the boundary ordinate outside the tabulated range.
type lookup struct {
	threshold float64
	pl        interp.PiecewiseLinear
}

func newLookup(t stateTable) lookup {
	xs := make([]float64, len(t.points))
	ys := make([]float64, len(t.points))
	for i, p := range t.points {
		xs[i] = p[0]
		ys[i] = p[1]
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		panic(fmt.Sprintf("excitation: malformed %s table: %v", t.label, err))
	}
	return lookup{threshold: t.threshold, pl: pl}
}

var (
	lookup2p = newLookup(table2p)
	lookup3p = newLookup(table3p)
	lookup4p = newLookup(table4p)
	lookup5p = newLookup(table5p)
	lookup6p = newLookup(table6p)
)

// XSec evaluates hydrogen 1s -> np excitation cross-sections at a fixed
// projectile kinetic energy.
type XSec struct {
	T float64 // projectile kinetic energy [eV]
}

func NewXSec(T float64) *XSec {
	return &XSec{T: T}
}

func (x *XSec) calc(l *lookup) float64 {
	if x.T < l.threshold {
		return 0.0
	}
	return l.pl.Predict(x.T)
}

// CalcXSec2p returns the 1s -> 2p excitation cross-section [m^2].
func (x *XSec) CalcXSec2p() float64 { return x.calc(&lookup2p) }

// CalcXSec3p returns the 1s -> 3p excitation cross-section [m^2].
func (x *XSec) CalcXSec3p() float64 { return x.calc(&lookup3p) }

// CalcXSec4p returns the 1s -> 4p excitation cross-section [m^2].
func (x *XSec) CalcXSec4p() float64 { return x.calc(&lookup4p) }

// CalcXSec5p returns the 1s -> 5p excitation cross-section [m^2].
func (x *XSec) CalcXSec5p() float64 { return x.calc(&lookup5p) }

// CalcXSec6p returns the 1s -> 6p excitation cross-section [m^2].
func (x *XSec) CalcXSec6p() float64 { return x.calc(&lookup6p) }

// TotalXSec returns the summed 2p..6p excitation cross-section [m^2].
func (x *XSec) TotalXSec() float64 {
	return x.CalcXSec2p() + x.CalcXSec3p() + x.CalcXSec4p() +
		x.CalcXSec5p() + x.CalcXSec6p()
}
