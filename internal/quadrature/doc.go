// Package quadrature provides adaptive Gauss-Kronrod integration.
//
// The panel rule is the 7/15-point pair used by QUADPACK:
//
//   - [Kronrod15]: single-panel estimate with an embedded-Gauss error
//     estimate
//   - [Adaptive]: recursive bisection until the error estimate meets a
//     relative tolerance, with a fixed subdivision depth cap
//
// All abscissae are interior to the panel, so integrands that diverge at
// an interval endpoint are never evaluated there; the depth cap keeps the
// recursion finite even when the integral itself does not converge.
package quadrature
