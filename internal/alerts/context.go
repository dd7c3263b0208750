package alerts

// VehicleParams are the static parameters of the fingerprinted vehicle,
// fixed for the life of the drive.
type VehicleParams struct {
	CarName     string
	Fingerprint string

	// MinSteerSpeed is the lowest speed (m/s) at which the platform
	// accepts steering commands.
	MinSteerSpeed float64
}

// Telemetry is a point-in-time snapshot of the live signals generator
// alerts may read. The engine never validates its shape; catalog authors
// own the contract with the producers filling it.
type Telemetry struct {
	// VEgo is the current vehicle speed in m/s.
	VEgo float64

	// Calibration progress, 0-100.
	CalPerc int

	// GPSIntegrated is true when the GPS antenna is on the main board.
	GPSIntegrated bool

	// AutoLaneChangeTimer counts down to an automatic lane change, in
	// seconds.
	AutoLaneChangeTimer float64

	// JoystickAxes carries debug joystick inputs (gas/brake, steer).
	JoystickAxes []float64

	// CruiseMainOn is the state of the stock cruise main switch.
	CruiseMainOn bool
}

// ResolveContext carries everything a generator may need for one tick.
type ResolveContext struct {
	Params    VehicleParams
	Telemetry Telemetry

	// Metric selects km/h over mph in generated text.
	Metric bool
}
