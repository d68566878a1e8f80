// Package excitation provides electron-impact excitation cross-sections
// for atomic hydrogen, after Stone, Kim & Desclaux (2002).
//
// Cross-sections from the 1s ground state to the 2p through 6p final
// states are tabulated against projectile energy and evaluated by
// piecewise-linear interpolation:
//
//   - [XSec.CalcXSec2p] .. [XSec.CalcXSec6p]: per-state cross-sections
//   - [XSec.TotalXSec]: sum over the five states
//
// Below a state's excitation threshold the cross-section is exactly
// zero. Outside the tabulated energy range the interpolation clamps to
// the boundary value rather than extrapolating.
package excitation
