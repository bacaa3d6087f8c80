package components

import (
	"math"
	"testing"

	"github.com/petragon/stonefall/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLauncherDefaults(t *testing.T) {
	l := NewLauncherData()
	cfg := config.Launch

	assert.Equal(t, cfg.DefaultPullback, l.Pullback)
	assert.Equal(t, cfg.DefaultAngle, l.ReleaseAngle)
	assert.Equal(t, cfg.DefaultCounterweight, l.CounterweightMass)
	assert.Equal(t, cfg.DefaultSlingLength, l.SlingLength)
}

func TestSettersClampToMechanicalLimits(t *testing.T) {
	l := NewLauncherData()
	cfg := config.Launch

	l.SetPullback(2)
	assert.Equal(t, cfg.MaxPullback, l.Pullback)
	l.SetPullback(-1)
	assert.Equal(t, cfg.MinPullback, l.Pullback)

	l.SetReleaseAngle(89)
	assert.Equal(t, cfg.MaxAngle, l.ReleaseAngle)
	l.SetReleaseAngle(5)
	assert.Equal(t, cfg.MinAngle, l.ReleaseAngle)

	l.SetCounterweightMass(10000)
	assert.Equal(t, cfg.MaxCounterweight, l.CounterweightMass)
	l.SetCounterweightMass(0)
	assert.Equal(t, cfg.MinCounterweight, l.CounterweightMass)

	l.SetSlingLength(50)
	assert.Equal(t, cfg.MaxSlingLength, l.SlingLength)
	l.SetSlingLength(0)
	assert.Equal(t, cfg.MinSlingLength, l.SlingLength)
}

func TestLaunchVelocityScalesWithInputs(t *testing.T) {
	l := NewLauncherData()
	cfg := config.Launch

	// All inputs at their ceiling hit the efficiency-scaled top speed
	l.SetPullback(cfg.MaxPullback)
	l.SetCounterweightMass(cfg.MaxCounterweight)
	l.SetSlingLength(cfg.MaxSlingLength)
	require.InDelta(t, cfg.MaxLaunchSpeed*cfg.Efficiency, l.LaunchVelocity(), 1e-9)

	// Halving the pullback halves the speed
	top := l.LaunchVelocity()
	l.SetPullback((cfg.MinPullback + cfg.MaxPullback) / 2)
	assert.InDelta(t, top/2, l.LaunchVelocity(), 1e-9)

	// Any input at its floor kills the launch entirely
	l.SetCounterweightMass(cfg.MinCounterweight)
	assert.Equal(t, 0.0, l.LaunchVelocity())
}

func TestLaunchDirectionIsUnitReleaseVector(t *testing.T) {
	l := NewLauncherData()
	l.SetReleaseAngle(30)

	dir := l.LaunchDirection()
	assert.InDelta(t, math.Cos(30*math.Pi/180), dir.X, 1e-12)
	assert.InDelta(t, math.Sin(30*math.Pi/180), dir.Y, 1e-12)
	assert.InDelta(t, 1.0, math.Hypot(dir.X, dir.Y), 1e-12)
}

func TestDerivedStateRecomputesAfterChange(t *testing.T) {
	l := NewLauncherData()
	before := l.LaunchVelocity()

	l.SetSlingLength(l.SlingLength + 1)
	after := l.LaunchVelocity()
	assert.Greater(t, after, before)

	// Stable between reads with no intervening change
	assert.Equal(t, after, l.LaunchVelocity())
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	l := NewLauncherData()
	l.SetPullback(0.6)
	l.SetReleaseAngle(55)
	l.SetCounterweightMass(220)
	l.SetSlingLength(4)

	saved := l.Save()

	restored := NewLauncherData()
	restored.Restore(saved)
	assert.Equal(t, l.Pullback, restored.Pullback)
	assert.Equal(t, l.ReleaseAngle, restored.ReleaseAngle)
	assert.Equal(t, l.CounterweightMass, restored.CounterweightMass)
	assert.Equal(t, l.SlingLength, restored.SlingLength)
	assert.Equal(t, l.LaunchVelocity(), restored.LaunchVelocity())
}

func TestRestoreClampsTamperedRecords(t *testing.T) {
	l := NewLauncherData()
	l.Restore(SavedLauncher{
		Pullback:          9,
		ReleaseAngle:      -20,
		CounterweightMass: 1e6,
		SlingLength:       -3,
	})

	cfg := config.Launch
	assert.Equal(t, cfg.MaxPullback, l.Pullback)
	assert.Equal(t, cfg.MinAngle, l.ReleaseAngle)
	assert.Equal(t, cfg.MaxCounterweight, l.CounterweightMass)
	assert.Equal(t, cfg.MinSlingLength, l.SlingLength)
}
