package component

// Velocity is in pixels per second; the movement system scales it by dt.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
