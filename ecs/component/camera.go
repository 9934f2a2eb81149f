package component

// Camera scales world space into screen space around its transform.
type Camera struct {
	Zoom float64
}

var CameraComponent = NewComponent[Camera]()
