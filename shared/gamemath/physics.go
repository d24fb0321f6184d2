package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// GroundSpeed returns the horizontal speed of a grounded body steering in
// direction (-1, 0 or 1). Grounded control is instant.
func GroundSpeed(direction int, maxSpeed float64) float64 {
	return float64(direction) * maxSpeed
}

// AirSpeed accumulates airborne steering onto speedX and clamps the result.
func AirSpeed(speedX float64, direction int, accel, maxSpeed float64) float64 {
	return ClampSpeed(speedX+float64(direction)*accel, maxSpeed)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
