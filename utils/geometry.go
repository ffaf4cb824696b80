package utils

import "math"

func Distance(x1, y1, x2, y2 float64) float64 {
	deltaX := x2 - x1
	deltaY := y2 - y1

	return math.Sqrt(deltaX*deltaX + deltaY*deltaY)
}

// ClosestPointOnSegment projects (px, py) onto the segment a-b, clamping the
// projection parameter to [0,1]. A zero-length segment returns a.
func ClosestPointOnSegment(px, py, ax, ay, bx, by float64) (float64, float64) {
	segX := bx - ax
	segY := by - ay

	lengthSquared := segX*segX + segY*segY
	if lengthSquared == 0 {
		return ax, ay
	}

	param := ((px-ax)*segX + (py-ay)*segY) / lengthSquared
	param = Clamp01(param)

	return ax + param*segX, ay + param*segY
}

func PointSegmentDistance(px, py, ax, ay, bx, by float64) float64 {
	cx, cy := ClosestPointOnSegment(px, py, ax, ay, bx, by)
	return Distance(px, py, cx, cy)
}

// CirclesOverlap reports a strict overlap; touching circles do not overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < r1+r2
}

func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

func Clamp01(value float64) float64 {
	return Clamp(value, 0, 1)
}

// Polar returns the vector of the given angle (radians) and magnitude.
func Polar(angle, magnitude float64) (float64, float64) {
	return math.Cos(angle) * magnitude, math.Sin(angle) * magnitude
}

func DirectionFromString(direction string) string {
	if direction == "ArrowLeft" {
		return "left"
	} else if direction == "ArrowRight" {
		return "right"
	}
	return ""
}
