package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Unreachable is returned by the inverse solvers when the requested geometry
// has no real solution. Callers must check for it; the solvers never panic.
const Unreachable = -1.0

// RequiredVelocity solves the launch speed needed to hit target from start at
// a fixed launch angle (degrees). Wind is ignored; this is the quick closed
// form, not the stepped simulation. Returns Unreachable when the geometry has
// no solution (target behind the launcher, angle too flat for the height
// difference, or a non-positive velocity square).
func RequiredVelocity(start, target dmath.Vec2, angleDeg float64, env *EnvironmentParams) float64 {
	e := envOrDefault(env)
	g := gravityMagnitude(e)

	dx := math.Abs(target.X - start.X)
	dy := target.Y - start.Y
	if dx == 0 {
		return Unreachable
	}

	rad := angleDeg * math.Pi / 180
	cos := math.Cos(rad)

	denom := 2 * cos * cos * (dx*math.Tan(rad) - dy)
	if denom <= 0 {
		return Unreachable
	}

	v2 := g * dx * dx / denom
	if v2 <= 0 {
		return Unreachable
	}
	return math.Sqrt(v2)
}

// OptimalAngle solves the launch angle (degrees) that hits target from start
// at a fixed speed. Of the two algebraic roots it picks the higher, more
// arcing one, clamped to [0,90]. Returns Unreachable when the discriminant is
// negative (target outside the achievable envelope at that speed).
func OptimalAngle(start, target dmath.Vec2, speed float64, env *EnvironmentParams) float64 {
	e := envOrDefault(env)
	g := gravityMagnitude(e)

	dx := math.Abs(target.X - start.X)
	dy := target.Y - start.Y
	v2 := speed * speed

	if dx < 1e-9 {
		// Straight up: reachable only below the vertical apex
		if dy <= v2/(2*g) {
			return 90
		}
		return Unreachable
	}

	disc := v2*v2 - g*(g*dx*dx+2*dy*v2)
	if disc < 0 {
		return Unreachable
	}

	// Higher root gives the arcing solution
	rad := math.Atan((v2 + math.Sqrt(disc)) / (g * dx))
	deg := rad * 180 / math.Pi
	if deg < 0 {
		deg = 0
	}
	if deg > 90 {
		deg = 90
	}
	return deg
}

// MaxRange returns the level-ground range of a launch, ignoring wind
func MaxRange(speed, angleDeg float64, env *EnvironmentParams) float64 {
	e := envOrDefault(env)
	g := gravityMagnitude(e)
	rad := angleDeg * math.Pi / 180
	return speed * speed * math.Sin(2*rad) / g
}

// MaxHeight returns the apex height above the launch point, ignoring wind
func MaxHeight(speed, angleDeg float64, env *EnvironmentParams) float64 {
	e := envOrDefault(env)
	g := gravityMagnitude(e)
	s := math.Sin(angleDeg * math.Pi / 180)
	return speed * speed * s * s / (2 * g)
}

// TimeOfFlight returns the level-ground flight time, ignoring wind
func TimeOfFlight(speed, angleDeg float64, env *EnvironmentParams) float64 {
	e := envOrDefault(env)
	g := gravityMagnitude(e)
	return 2 * speed * math.Sin(angleDeg*math.Pi/180) / g
}
