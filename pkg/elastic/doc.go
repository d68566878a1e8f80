// Package elastic provides the Mott elastic scattering cross-section for
// electrons on atomic tritium.
//
//   - [MottXSec.RutherfordDCS]: bare Rutherford differential
//     cross-section for Z=1
//   - [MottXSec.SinglyDifferentialXSecTheta]: Rutherford with the Mott
//     recoil correction for the triton nucleus
//   - [MottXSec.TotalXSec]: the recoil-corrected differential integrated
//     over cos(theta) in [-1, 1]
//
// The differential cross-section diverges at forward scattering
// (cos(theta) = 1); the total is evaluated with an adaptive Gauss-Kronrod
// rule whose nodes never touch the endpoint, so it returns the finite
// depth-limited value a general-purpose adaptive integrator produces.
package elastic
