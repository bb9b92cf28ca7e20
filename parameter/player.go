package parameter

// Actor
const (
	// ActorScale is the rendered sprite edge length, radius is half of it
	ActorScale  = 40.0
	ActorRadius = ActorScale / 2

	// AngularSpeed is the constant spin in radians per second
	AngularSpeed = 5.0

	// InputVelocityDelta is added per held direction per tick
	InputVelocityDelta = 50.0
)
