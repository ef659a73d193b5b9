package session

import "sns/internal/shape"

// DefaultOffset is the device position of the canvas origin.
var DefaultOffset = shape.Point{X: 605, Y: 5}

// DeviceToCanvas translates a device coordinate into canvas space.
func DeviceToCanvas(p, offset shape.Point) shape.Point {
	return shape.Point{X: p.X - offset.X, Y: p.Y - offset.Y}
}
