package ionization

import (
	"math"

	"github.com/san-kum/escat/internal/constants"
)

// Model constants from Rudd (1991). Energies in this model are
// normalized by the hydrogen ionization energy, not the Rydberg.
const (
	ruddA1    = 0.74
	ruddA2    = 0.87
	ruddA3    = -0.6
	ruddN     = 2.4  // energy-sharing shape exponent
	ruddBeta  = 0.6  // binary-encounter peak width scale
	ruddGamma = 10.0 // backscatter lobe amplitude
	ruddG5    = 0.33 // backscatter lobe width
)

// ruddNorm is the scale 4*pi*a0^2 * (R/I_H)^2.
var ruddNorm = 4.0 * math.Pi * constants.BohrRadius * constants.BohrRadius *
	(constants.RydbergEV / constants.IonizationEnergyH) *
	(constants.RydbergEV / constants.IonizationEnergyH)

// RuddXSec evaluates the Rudd (1991) hydrogen ionization model at a
// fixed projectile kinetic energy.
type RuddXSec struct {
	T float64 // projectile kinetic energy [eV]
	t float64 // T / I_H
}

func NewRuddXSec(T float64) *RuddXSec {
	return &RuddXSec{T: T, t: T / constants.IonizationEnergyH}
}

// f is the empirical log fit F(t).
func (r *RuddXSec) f() float64 {
	return (ruddA1*math.Log(r.t) + ruddA2 + ruddA3/r.t) / r.t
}

// g1 is the closed-form integral of the energy-sharing shape over the
// secondary-electron range.
func (r *RuddXSec) g1() float64 {
	n := ruddN
	return (1.0-math.Pow(r.t, 1-n))/(n-1.0) -
		math.Pow(2.0/(r.t+1), n/2.0)*(1-math.Pow(r.t, 1-n/2))/(n-2)
}

// TotalXSec returns the total ionization cross-section [m^2].
func (r *RuddXSec) TotalXSec() float64 {
	return ruddNorm * r.f() * r.g1()
}

// f1 is the symmetric energy-sharing shape in w = W/I_H.
func (r *RuddXSec) f1(W float64) float64 {
	w := W / constants.IonizationEnergyH
	n := ruddN
	return 1.0/math.Pow(w+1, n) + 1.0/math.Pow(r.t-w, n) -
		1.0/math.Pow((w+1)*(r.t-w), n/2.0)
}

// g2 is the binary-encounter peak position in cos(theta).
func (r *RuddXSec) g2(W float64) float64 {
	w := W / constants.IonizationEnergyH
	return math.Sqrt((w + 1.0) / r.t)
}

// g3 is the binary-encounter peak width.
func (r *RuddXSec) g3(W float64) float64 {
	w := W / constants.IonizationEnergyH
	g2 := r.g2(W)
	return ruddBeta * math.Sqrt((1.0-g2*g2)/w)
}

// g4 is the amplitude of the backscatter lobe.
func (r *RuddXSec) g4(W float64) float64 {
	w := W / constants.IonizationEnergyH
	q := 1.0 - w/r.t
	return ruddGamma * q * q * q / (r.t * (w + 1.0))
}

// gBE is the binary-encounter Lorentzian integrated over cos(theta).
func (r *RuddXSec) gBE(W float64) float64 {
	g2 := r.g2(W)
	g3 := r.g3(W)
	return 2.0 * math.Pi * g3 *
		(math.Atan((1.0-g2)/g3) + math.Atan((1.0+g2)/g3))
}

// dcsScale normalizes the angular shape so that its integral over angles
// reproduces the singly differential cross-section.
func (r *RuddXSec) dcsScale(W float64) float64 {
	return (ruddNorm * r.f() * r.f1(W) / constants.IonizationEnergyH) /
		(r.gBE(W) + r.g4(W)*2.9)
}

// SinglyDifferentialXSecW returns the cross-section differential in the
// ejected electron energy W [m^2/eV]. W = 0 divides by zero inside g3
// and yields NaN, as the closed form does.
func (r *RuddXSec) SinglyDifferentialXSecW(W float64) float64 {
	return r.dcsScale(W) * (r.gBE(W) + r.g4(W)*2.9)
}

// fBE is the binary-encounter Lorentzian in cos(theta).
func (r *RuddXSec) fBE(W, theta float64) float64 {
	q := (math.Cos(theta) - r.g2(W)) / r.g3(W)
	return 1.0 / (1.0 + q*q)
}

// g4fb is the backscatter Lorentzian centered at cos(theta) = -1.
func (r *RuddXSec) g4fb(W, theta float64) float64 {
	q := (math.Cos(theta) + 1) / ruddG5
	return r.g4(W) / (1.0 + q*q)
}

// DoublyDifferentialXSec returns the cross-section differential in the
// ejected electron energy W and scattering angle theta.
func (r *RuddXSec) DoublyDifferentialXSec(W, theta float64) float64 {
	return r.dcsScale(W) * (r.fBE(W, theta) + r.g4fb(W, theta))
}
