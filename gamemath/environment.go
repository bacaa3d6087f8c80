package gamemath

import (
	"github.com/petragon/stonefall/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// EnvironmentParams is the per-level ballistic environment. Wind is a unit
// direction scaled by WindStrength; gravity is a full acceleration vector.
type EnvironmentParams struct {
	Gravity       dmath.Vec2
	WindDirection dmath.Vec2
	WindStrength  float64
}

// DefaultEnvironment returns the zero-wind, standard-gravity environment
func DefaultEnvironment() EnvironmentParams {
	return EnvironmentParams{
		Gravity: dmath.Vec2{X: 0, Y: config.Trajectory.DefaultGravityY},
	}
}

// envOrDefault makes a nil environment safe to pass everywhere
func envOrDefault(env *EnvironmentParams) EnvironmentParams {
	if env == nil {
		return DefaultEnvironment()
	}
	return *env
}

// gravityMagnitude returns |g| for the closed-form solvers, falling back to
// the default when a level supplies a degenerate gravity vector.
func gravityMagnitude(env EnvironmentParams) float64 {
	g := env.Gravity.Y
	if g < 0 {
		g = -g
	}
	if g == 0 {
		g = -config.Trajectory.DefaultGravityY
	}
	return g
}
