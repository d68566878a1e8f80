// Package constants holds the physical constants shared by the
// cross-section evaluators. CODATA 2018 values are used throughout so
// results stay directly comparable with tabulations built on the same
// reference data.
package constants

import "math"

const (
	HalfLifeTritium float64 = 12.32                       // [years]
	SecondsPerYear  float64 = 60.0 * 60.0 * 24.0 * 365.25 // Julian year [s]

	RydbergEV         float64 = 13.605693122994 // Rydberg energy [eV]
	IonizationEnergyH float64 = 13.59844        // hydrogen 1s ionization energy [eV]

	BohrRadius       float64 = 5.29177210903e-11 // [m]
	ElementaryCharge float64 = 1.602176634e-19   // [C]
	SpeedOfLight     float64 = 2.99792458e8      // [m/s]
	ReducedPlanck    float64 = 1.054571817e-34   // hbar [J s]
	FineStructure    float64 = 7.2973525693e-3
	AtomicMassUnit   float64 = 1.66053906660e-27 // [kg]
)

// DecayConstTritium is the tritium decay constant ln2 / t_half [s^-1].
var DecayConstTritium = math.Ln2 / (HalfLifeTritium * SecondsPerYear)
