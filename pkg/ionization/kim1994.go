package ionization

import (
	"fmt"
	"math"

	"github.com/san-kum/escat/internal/constants"
)

// Kim1994 evaluates the binary-encounter-dipole ionization model of
// Kim & Rudd (1994) at a fixed projectile kinetic energy.
type Kim1994 struct {
	T  float64 // projectile kinetic energy [eV]
	sd speciesData
}

// NewKim1994 resolves the species fit once; every method afterwards is a
// pure function of T and its arguments. Species outside {H, He, H2} fail
// with ErrUnsupportedSpecies.
func NewKim1994(T float64, species Species) (*Kim1994, error) {
	sd, ok := speciesTable[species]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSpecies, species)
	}
	return &Kim1994{T: T, sd: sd}, nil
}

// DiffOscillatorStrength evaluates the fitted differential oscillator
// strength at y, the binding energy divided by the transfer energy.
func (k *Kim1994) DiffOscillatorStrength(y float64) float64 {
	c := k.sd.fit
	y2 := y * y
	y3 := y2 * y
	return c.a*y + c.b*y2 + c.c*y3 + c.d*y3*y + c.e*y3*y2 + c.f*y3*y3
}

// DiffOscillatorStrengthW evaluates the same fit at w, the ejected
// electron energy divided by the binding energy, via y = 1/(w+1).
func (k *Kim1994) DiffOscillatorStrengthW(w float64) float64 {
	c := k.sd.fit
	v := w + 1.0
	v2 := v * v
	v3 := v2 * v
	return c.a/v + c.b/v2 + c.c/v3 + c.d/(v3*v) + c.e/(v3*v2) + c.f/(v3*v3)
}

// d is the dipole term: the fitted oscillator strength integrated in
// closed form up to the energy-sharing bound tTerm = (t+1)/2, per target
// electron.
func (k *Kim1994) d() float64 {
	c := k.sd.fit
	t := k.T / k.sd.binding
	tTerm := (t + 1.0) / 2.0
	bTerm := (c.b / 2) * (1 - math.Pow(tTerm, -2))
	cTerm := (c.c / 3) * (1 - math.Pow(tTerm, -3))
	dTerm := (c.d / 4) * (1 - math.Pow(tTerm, -4))
	eTerm := (c.e / 5) * (1 - math.Pow(tTerm, -5))
	fTerm := (c.f / 6) * (1 - math.Pow(tTerm, -6))
	return (bTerm + cTerm + dTerm + eTerm + fTerm) / k.sd.electrons
}

// s is the cross-section scale 4*pi*a0^2 * N * (R/B)^2.
func (k *Kim1994) s() float64 {
	bohrXSec := 4.0 * math.Pi * constants.BohrRadius * constants.BohrRadius
	ratio := constants.RydbergEV / k.sd.binding
	return bohrXSec * k.sd.electrons * ratio * ratio
}

// SingleDiffXSecW returns the singly differential ionization
// cross-section in the ejected electron energy W [m^2/eV].
func (k *Kim1994) SingleDiffXSecW(W float64) float64 {
	t := k.T / k.sd.binding
	u := k.sd.orbitalKE / k.sd.binding
	w := W / k.sd.binding
	nRatio := k.sd.ni / k.sd.electrons
	prefac := k.s() / (k.sd.binding * (t + u + 1))
	term1 := (nRatio - 2) / (t + 1) * (1/(w+1) + 1/(t-w))
	term2 := (2 - nRatio) * (1/((w+1)*(w+1)) + 1/((t-w)*(t-w)))
	term3 := math.Log(t) / (k.sd.electrons * (w + 1)) * k.DiffOscillatorStrengthW(w)
	return prefac * (term1 + term2 + term3)
}

// TotalXSec returns the total ionization cross-section [m^2].
func (k *Kim1994) TotalXSec() float64 {
	t := k.T / k.sd.binding
	u := k.sd.orbitalKE / k.sd.binding
	nRatio := k.sd.ni / k.sd.electrons
	prefac := k.s() / (t + u + 1)
	return prefac * (k.d()*math.Log(t) + (2-nRatio)*((t-1)/t-math.Log(t)/(t+1)))
}
