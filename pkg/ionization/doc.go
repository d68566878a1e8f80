// Package ionization provides electron-impact ionization cross-sections
// for simple atomic and molecular targets.
//
// Two published models are implemented:
//
//   - [Kim1994]: binary-encounter-dipole model of Kim & Rudd,
//     Phys. Rev. A 50, 3954 (1994), for H, He and H2
//   - [RuddXSec]: empirical hydrogen model of Rudd,
//     Phys. Rev. A 44, 1644 (1991), including singly and doubly
//     differential forms
//
// Energies are in eV, angles in radians, cross-sections in m^2
// (m^2/eV for the singly differential forms). Evaluators are immutable
// once constructed and safe for concurrent use.
//
// # Numeric domain
//
// Formulas are evaluated as published, without guards: a projectile
// energy at or below the binding energy yields the same IEEE special
// values (NaN, Inf, negative cross-sections) the closed forms produce.
// The only recognized error is [ErrUnsupportedSpecies].
package ionization
