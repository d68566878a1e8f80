package ionization

import "errors"

// Species identifies a target with a published Kim-Rudd fit.
type Species string

const (
	H  Species = "H"
	He Species = "He"
	H2 Species = "H2"
)

// ErrUnsupportedSpecies indicates a species tag outside the closed set
// {H, He, H2}.
var ErrUnsupportedSpecies = errors.New("ionization: unsupported species")

// dipoleFit holds the polynomial fit coefficients of the differential
// dipole oscillator strength. The a coefficient is zero for every fitted
// species but kept so the struct matches the published form.
type dipoleFit struct {
	a, b, c, d, e, f float64
}

// speciesData collects the per-species scalars of the Kim-Rudd model.
type speciesData struct {
	electrons float64 // N, number of bound electrons
	binding   float64 // B, binding energy [eV]
	orbitalKE float64 // U, mean orbital kinetic energy [eV]
	ni        float64 // Ni, integral of the fitted oscillator strength
	fit       dipoleFit
}

var speciesTable = map[Species]speciesData{
	H: {
		electrons: 1.0,
		binding:   1.36057e1,
		orbitalKE: 1.36057e1,
		ni:        0.4343,
		fit:       dipoleFit{b: -2.2473e-2, c: 1.1775, d: -4.6264e-1, e: 8.9064e-2},
	},
	He: {
		electrons: 2.0,
		binding:   2.459e1,
		orbitalKE: 3.951e1,
		ni:        1.605,
		fit:       dipoleFit{c: 1.2178e1, d: -2.9585e1, e: 3.1251e1, f: -1.2175e1},
	},
	H2: {
		electrons: 2.0,
		binding:   1.543e1,
		orbitalKE: 2.568e1,
		ni:        1.173,
		fit:       dipoleFit{c: 1.1262, d: 6.3982, e: -7.8055, f: 2.1440},
	},
}
