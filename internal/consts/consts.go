package consts

// Electrical constants of the sandbox parts. These are properties of the
// simulated hardware, not user-editable element values.
const (
	RailVoltage          = 3.3  // Controller supply rail (V)
	ControllerResistance = 10.0 // Series resistance of rail and pin sources (Ohm)

	LightbulbResistance = 48.0  // Fixed filament resistance (Ohm)
	LEDOnResistance     = 100.0 // On-state resistance of a conducting LED (Ohm)

	VoltmeterResistance = 10e6 // Input impedance in voltage mode (Ohm)
	AmmeterShunt        = 1e-2 // Shunt resistance in current mode (Ohm)
	OhmmeterTestVoltage = 1.0  // Ideal test source in resistance mode (V)
)

// Solver limits.
const (
	PivotEpsilon     = 1e-12 // Scaled pivot below this means a singular system
	MaxLEDIterations = 8     // Cap on the LED on/off fixed-point loop
	MinResistance    = 1e-6  // Clamp for degenerate resistances (Ohm)
)
