package common

// Vec2 is a 2D vector in screen space (+X right, +Y down).
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
