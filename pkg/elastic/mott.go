package elastic

import (
	"math"

	"github.com/san-kum/escat/internal/constants"
	"github.com/san-kum/escat/internal/quadrature"
)

// tritonMassU is the recoil target mass in atomic mass units. The target
// nucleus is the triton regardless of projectile energy.
const tritonMassU = 3.01604928

// quadTol is the relative tolerance of the total cross-section
// integration.
const quadTol = 1e-8

// MottXSec evaluates Mott scattering off hydrogen (Z=1) at a fixed
// projectile kinetic energy.
type MottXSec struct {
	T float64 // projectile kinetic energy [eV]
}

func NewMottXSec(T float64) *MottXSec {
	return &MottXSec{T: T}
}

// RutherfordDCS returns the Rutherford differential cross-section at the
// given cosine of the scattering angle [m^2].
func (m *MottXSec) RutherfordDCS(cosTheta float64) float64 {
	k := constants.ReducedPlanck * constants.SpeedOfLight /
		(m.T * constants.ElementaryCharge)
	d := 1 - cosTheta
	return (math.Pi / 2.0) * constants.FineStructure * constants.FineStructure *
		k * k / (d * d)
}

// dcs applies the Mott recoil factor for the triton target.
func (m *MottXSec) dcs(cosTheta float64) float64 {
	nuclMass := tritonMassU * constants.AtomicMassUnit
	recoil := ((1 + cosTheta) / 2) /
		(1 + (1-cosTheta)*m.T*constants.ElementaryCharge/
			(nuclMass*constants.SpeedOfLight*constants.SpeedOfLight))
	return m.RutherfordDCS(cosTheta) * recoil
}

// SinglyDifferentialXSecTheta returns the recoil-corrected differential
// cross-section at scattering angle theta [m^2].
func (m *MottXSec) SinglyDifferentialXSecTheta(theta float64) float64 {
	return m.dcs(math.Cos(theta))
}

// TotalXSec integrates the differential cross-section over cos(theta) in
// [-1, 1] [m^2]. The quadrature error estimate is discarded.
func (m *MottXSec) TotalXSec() float64 {
	total, _ := quadrature.Adaptive(m.dcs, -1, 1, quadTol)
	return total
}
