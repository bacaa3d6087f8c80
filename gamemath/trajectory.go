package gamemath

import (
	"github.com/petragon/stonefall/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// Predict forward-simulates a ballistic arc from start with the given launch
// speed and unit direction, applying gravity and wind each fixed step. It
// terminates when the arc crosses y=0 (the final two points are interpolated
// to the exact crossing), after MaxTime of simulated flight, or at MaxPoints,
// whichever comes first. The first returned point is the start position.
func Predict(start dmath.Vec2, speed float64, direction dmath.Vec2, env *EnvironmentParams) []dmath.Vec2 {
	cfg := config.Trajectory
	e := envOrDefault(env)
	dt := cfg.TimeStep

	vx := direction.X * speed
	vy := direction.Y * speed
	ax := e.Gravity.X + e.WindDirection.X*e.WindStrength
	ay := e.Gravity.Y + e.WindDirection.Y*e.WindStrength

	points := make([]dmath.Vec2, 0, cfg.MaxPoints)
	prev := start
	points = append(points, prev)

	for t := 0.0; t < cfg.MaxTime && len(points) < cfg.MaxPoints; t += dt {
		vx += ax * dt
		vy += ay * dt
		cur := dmath.Vec2{X: prev.X + vx*dt, Y: prev.Y + vy*dt}

		if cur.Y <= 0 && prev.Y > 0 {
			points = append(points, groundCrossing(prev, cur))
			break
		}

		points = append(points, cur)
		prev = cur
	}

	return points
}

// PredictImpactPoint returns only the final point of the predicted arc
func PredictImpactPoint(start dmath.Vec2, speed float64, direction dmath.Vec2, env *EnvironmentParams) dmath.Vec2 {
	points := Predict(start, speed, direction, env)
	return points[len(points)-1]
}

// PredictSimplified is the accessibility aiming mode: wind is ignored and the
// launch speed gets a flat boost, reusing the same integrator.
func PredictSimplified(start dmath.Vec2, speed float64, direction dmath.Vec2, env *EnvironmentParams) []dmath.Vec2 {
	e := envOrDefault(env)
	e.WindDirection = dmath.Vec2{}
	e.WindStrength = 0
	return Predict(start, speed*config.Trajectory.SimplifiedBoost, direction, &e)
}

// WillHitTarget samples the predicted arc and reports whether any sample lies
// within targetRadius of targetPosition.
func WillHitTarget(start dmath.Vec2, speed float64, direction dmath.Vec2, env *EnvironmentParams, targetPosition dmath.Vec2, targetRadius float64) bool {
	for _, p := range Predict(start, speed, direction, env) {
		dx := p.X - targetPosition.X
		dy := p.Y - targetPosition.Y
		if dx*dx+dy*dy <= targetRadius*targetRadius {
			return true
		}
	}
	return false
}

// groundCrossing interpolates the exact y=0 point between the last airborne
// sample and the first underground one.
func groundCrossing(above, below dmath.Vec2) dmath.Vec2 {
	f := above.Y / (above.Y - below.Y)
	return dmath.Vec2{X: above.X + (below.X-above.X)*f, Y: 0}
}
