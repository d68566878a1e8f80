package excitation

// Excitation cross-section datasets for the np final states of atomic
// hydrogen from the 1s ground state, after Stone, Kim & Desclaux (2002).
// Each point pairs a projectile energy [eV] with a cross-section [m^2];
// energies are strictly increasing. The threshold is the physical
// excitation energy of the state: below it the cross-section is
// exactly zero.
var table2p = stateTable{
	label:     "2p",
	threshold: 10.204,
	points: [][2]float64{
		{11, 0.15876e-20}, {12, 0.24099e-20}, {13, 0.31086e-20},
		{14, 0.35119e-20}, {15, 0.39256e-20}, {16, 0.42786e-20},
		{17, 0.45828e-20}, {18, 0.48468e-20}, {19, 0.50768e-20},
		{20, 0.52779e-20}, {21, 0.54540e-20}, {22, 0.56084e-20},
		{23, 0.57439e-20}, {24, 0.58627e-20}, {26, 0.60580e-20},
		{28, 0.62069e-20}, {30, 0.63189e-20}, {32, 0.64013e-20},
		{34, 0.64597e-20}, {36, 0.64986e-20}, {38, 0.65216e-20},
		{40, 0.65315e-20}, {45, 0.65130e-20}, {50, 0.64520e-20},
		{55, 0.63647e-20}, {60, 0.62615e-20}, {65, 0.61489e-20},
		{70, 0.60315e-20}, {75, 0.59121e-20}, {80, 0.57929e-20},
		{85, 0.56750e-20}, {90, 0.55593e-20}, {95, 0.54465e-20},
		{100, 0.53369e-20}, {110, 0.51276e-20}, {120, 0.49322e-20},
		{130, 0.47500e-20}, {140, 0.45805e-20}, {150, 0.44227e-20},
		{160, 0.42756e-20}, {170, 0.41383e-20}, {180, 0.40100e-20},
		{190, 0.38898e-20}, {200, 0.37771e-20}, {250, 0.33045e-20},
		{300, 0.29445e-20}, {350, 0.26607e-20}, {400, 0.24309e-20},
		{450, 0.22408e-20}, {500, 0.20807e-20}, {600, 0.18254e-20},
		{700, 0.16303e-20}, {800, 0.14760e-20}, {900, 0.13505e-20},
		{1000, 0.12463e-20}, {1500, 0.09094e-20}, {2000, 0.07236e-20},
		{3000, 0.05214e-20},
	},
}

var table3p = stateTable{
	label:     "3p",
	threshold: 12.094,
	points: [][2]float64{
		{13, 0.03033e-20}, {14, 0.04382e-20}, {15, 0.05372e-20},
		{16, 0.06166e-20}, {17, 0.06827e-20}, {18, 0.07387e-20},
		{19, 0.07867e-20}, {20, 0.08282e-20}, {21, 0.08642e-20},
		{22, 0.08957e-20}, {23, 0.09231e-20}, {24, 0.09472e-20},
		{26, 0.09867e-20}, {28, 0.10169e-20}, {30, 0.10398e-20},
		{32, 0.10569e-20}, {34, 0.10695e-20}, {36, 0.10782e-20},
		{38, 0.10840e-20}, {40, 0.10872e-20}, {45, 0.10870e-20},
		{50, 0.10787e-20}, {55, 0.10654e-20}, {60, 0.10490e-20},
		{65, 0.10308e-20}, {70, 0.10116e-20}, {75, 0.09919e-20},
		{80, 0.09721e-20}, {85, 0.09524e-20}, {90, 0.09331e-20},
		{95, 0.09142e-20}, {100, 0.08959e-20}, {110, 0.08607e-20},
		{120, 0.08278e-20}, {130, 0.07972e-20}, {140, 0.07686e-20},
		{150, 0.07420e-20}, {160, 0.07171e-20}, {170, 0.06940e-20},
		{180, 0.06723e-20}, {190, 0.06520e-20}, {200, 0.06330e-20},
		{250, 0.05533e-20}, {300, 0.04926e-20}, {350, 0.04447e-20},
		{400, 0.04060e-20}, {450, 0.03741e-20}, {500, 0.03471e-20},
		{600, 0.03042e-20}, {700, 0.02715e-20}, {800, 0.02456e-20},
		{900, 0.02246e-20}, {1000, 0.02071e-20}, {1500, 0.01508e-20},
		{2000, 0.01198e-20}, {3000, 0.00862e-20},
	},
}

var table4p = stateTable{
	label:     "4p",
	threshold: 12.755,
	points: [][2]float64{
		{13, 0.01280e-20}, {14, 0.01849e-20}, {15, 0.02266e-20},
		{16, 0.02601e-20}, {17, 0.02880e-20}, {18, 0.03116e-20},
		{19, 0.03319e-20}, {20, 0.03494e-20}, {21, 0.03646e-20},
		{22, 0.03779e-20}, {23, 0.03894e-20}, {24, 0.03996e-20},
		{26, 0.04163e-20}, {28, 0.04290e-20}, {30, 0.04387e-20},
		{32, 0.04459e-20}, {34, 0.04512e-20}, {36, 0.04549e-20},
		{38, 0.04573e-20}, {40, 0.04587e-20}, {45, 0.04586e-20},
		{50, 0.04551e-20}, {55, 0.04495e-20}, {60, 0.04425e-20},
		{65, 0.04349e-20}, {70, 0.04268e-20}, {75, 0.04185e-20},
		{80, 0.04101e-20}, {85, 0.04018e-20}, {90, 0.03937e-20},
		{95, 0.03857e-20}, {100, 0.03780e-20}, {110, 0.03631e-20},
		{120, 0.03492e-20}, {130, 0.03363e-20}, {140, 0.03243e-20},
		{150, 0.03130e-20}, {160, 0.03025e-20}, {170, 0.02928e-20},
		{180, 0.02836e-20}, {190, 0.02751e-20}, {200, 0.02670e-20},
		{250, 0.02334e-20}, {300, 0.02078e-20}, {350, 0.01876e-20},
		{400, 0.01713e-20}, {450, 0.01578e-20}, {500, 0.01464e-20},
		{600, 0.01283e-20}, {700, 0.01145e-20}, {800, 0.01036e-20},
		{900, 0.00948e-20}, {1000, 0.00874e-20}, {1500, 0.00636e-20},
		{2000, 0.00505e-20}, {3000, 0.00364e-20},
	},
}

var table5p = stateTable{
	label:     "5p",
	threshold: 13.061,
	points: [][2]float64{
		{13, 0.00655e-20}, {14, 0.00947e-20}, {15, 0.01160e-20},
		{16, 0.01332e-20}, {17, 0.01475e-20}, {18, 0.01596e-20},
		{19, 0.01699e-20}, {20, 0.01789e-20}, {21, 0.01867e-20},
		{22, 0.01935e-20}, {23, 0.01994e-20}, {24, 0.02046e-20},
		{26, 0.02131e-20}, {28, 0.02197e-20}, {30, 0.02246e-20},
		{32, 0.02283e-20}, {34, 0.02310e-20}, {36, 0.02329e-20},
		{38, 0.02341e-20}, {40, 0.02348e-20}, {45, 0.02348e-20},
		{50, 0.02330e-20}, {55, 0.02301e-20}, {60, 0.02266e-20},
		{65, 0.02227e-20}, {70, 0.02185e-20}, {75, 0.02143e-20},
		{80, 0.02100e-20}, {85, 0.02057e-20}, {90, 0.02015e-20},
		{95, 0.01975e-20}, {100, 0.01935e-20}, {110, 0.01859e-20},
		{120, 0.01788e-20}, {130, 0.01722e-20}, {140, 0.01660e-20},
		{150, 0.01603e-20}, {160, 0.01549e-20}, {170, 0.01499e-20},
		{180, 0.01452e-20}, {190, 0.01408e-20}, {200, 0.01367e-20},
		{250, 0.01195e-20}, {300, 0.01064e-20}, {350, 0.00961e-20},
		{400, 0.00877e-20}, {450, 0.00808e-20}, {500, 0.00750e-20},
		{600, 0.00657e-20}, {700, 0.00586e-20}, {800, 0.00530e-20},
		{900, 0.00485e-20}, {1000, 0.00447e-20}, {1500, 0.00326e-20},
		{2000, 0.00259e-20}, {3000, 0.00186e-20},
	},
}

var table6p = stateTable{
	label:     "6p",
	threshold: 13.228,
	points: [][2]float64{
		{13, 0.00379e-20}, {14, 0.00548e-20}, {15, 0.00671e-20},
		{16, 0.00771e-20}, {17, 0.00853e-20}, {18, 0.00923e-20},
		{19, 0.00983e-20}, {20, 0.01035e-20}, {21, 0.01080e-20},
		{22, 0.01120e-20}, {23, 0.01154e-20}, {24, 0.01184e-20},
		{26, 0.01233e-20}, {28, 0.01271e-20}, {30, 0.01300e-20},
		{32, 0.01321e-20}, {34, 0.01337e-20}, {36, 0.01348e-20},
		{38, 0.01355e-20}, {40, 0.01359e-20}, {45, 0.01359e-20},
		{50, 0.01348e-20}, {55, 0.01332e-20}, {60, 0.01311e-20},
		{65, 0.01289e-20}, {70, 0.01264e-20}, {75, 0.01240e-20},
		{80, 0.01215e-20}, {85, 0.01191e-20}, {90, 0.01166e-20},
		{95, 0.01143e-20}, {100, 0.01120e-20}, {110, 0.01076e-20},
		{120, 0.01035e-20}, {130, 0.00996e-20}, {140, 0.00961e-20},
		{150, 0.00928e-20}, {160, 0.00896e-20}, {170, 0.00868e-20},
		{180, 0.00840e-20}, {190, 0.00815e-20}, {200, 0.00791e-20},
		{250, 0.00692e-20}, {300, 0.00616e-20}, {350, 0.00556e-20},
		{400, 0.00507e-20}, {450, 0.00468e-20}, {500, 0.00434e-20},
		{600, 0.00380e-20}, {700, 0.00339e-20}, {800, 0.00307e-20},
		{900, 0.00281e-20}, {1000, 0.00259e-20}, {1500, 0.00188e-20},
		{2000, 0.00150e-20}, {3000, 0.00108e-20},
	},
}
