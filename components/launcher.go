package components

import (
	"math"

	"github.com/petragon/stonefall/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// LauncherData holds the four adjustable trebuchet parameters and the launch
// state derived from them. The derivation is memoized: setters mark the data
// dirty and readers recompute lazily, so per-frame HUD reads are cheap.
type LauncherData struct {
	Pullback          float64 // 0..1 fraction of full draw
	ReleaseAngle      float64 // degrees above horizontal
	CounterweightMass float64 // kg
	SlingLength       float64 // meters

	dirty           bool
	launchVelocity  float64
	launchDirection dmath.Vec2
}

// SavedLauncher is the flat record exposed for save/resume
type SavedLauncher struct {
	Pullback          float64 `json:"pullback"`
	ReleaseAngle      float64 `json:"releaseAngle"`
	CounterweightMass float64 `json:"counterweightMass"`
	SlingLength       float64 `json:"slingLength"`
}

var Launcher = donburi.NewComponentType[LauncherData]()

// NewLauncherData returns a launcher at the configured defaults
func NewLauncherData() LauncherData {
	l := LauncherData{}
	l.ResetToDefaults()
	return l
}

// ResetToDefaults restores the fixed baseline parameters
func (l *LauncherData) ResetToDefaults() {
	cfg := config.Launch
	l.Pullback = cfg.DefaultPullback
	l.ReleaseAngle = cfg.DefaultAngle
	l.CounterweightMass = cfg.DefaultCounterweight
	l.SlingLength = cfg.DefaultSlingLength
	l.dirty = true
}

func (l *LauncherData) SetPullback(v float64) {
	l.Pullback = clamp(v, config.Launch.MinPullback, config.Launch.MaxPullback)
	l.dirty = true
}

func (l *LauncherData) SetReleaseAngle(deg float64) {
	l.ReleaseAngle = clamp(deg, config.Launch.MinAngle, config.Launch.MaxAngle)
	l.dirty = true
}

func (l *LauncherData) SetCounterweightMass(kg float64) {
	l.CounterweightMass = clamp(kg, config.Launch.MinCounterweight, config.Launch.MaxCounterweight)
	l.dirty = true
}

func (l *LauncherData) SetSlingLength(m float64) {
	l.SlingLength = clamp(m, config.Launch.MinSlingLength, config.Launch.MaxSlingLength)
	l.dirty = true
}

// LaunchVelocity returns the launch speed in m/s, recomputing if dirty
func (l *LauncherData) LaunchVelocity() float64 {
	if l.dirty {
		l.calculateLaunchPhysics()
	}
	return l.launchVelocity
}

// LaunchDirection returns the unit launch direction, recomputing if dirty
func (l *LauncherData) LaunchDirection() dmath.Vec2 {
	if l.dirty {
		l.calculateLaunchPhysics()
	}
	return l.launchDirection
}

// calculateLaunchPhysics derives velocity and direction from the current
// parameters. Gameplay-tuned: speed scales with the product of the normalized
// mechanical inputs, direction is the release angle unit vector.
func (l *LauncherData) calculateLaunchPhysics() {
	cfg := config.Launch

	np := normalize(l.Pullback, cfg.MinPullback, cfg.MaxPullback)
	nc := normalize(l.CounterweightMass, cfg.MinCounterweight, cfg.MaxCounterweight)
	ns := normalize(l.SlingLength, cfg.MinSlingLength, cfg.MaxSlingLength)

	l.launchVelocity = cfg.MaxLaunchSpeed * np * nc * ns * cfg.Efficiency

	rad := l.ReleaseAngle * math.Pi / 180
	l.launchDirection = dmath.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
	l.dirty = false
}

// Save returns the flat serializable record of the current parameters
func (l *LauncherData) Save() SavedLauncher {
	return SavedLauncher{
		Pullback:          l.Pullback,
		ReleaseAngle:      l.ReleaseAngle,
		CounterweightMass: l.CounterweightMass,
		SlingLength:       l.SlingLength,
	}
}

// Restore applies a saved record through the clamping setters
func (l *LauncherData) Restore(s SavedLauncher) {
	l.SetPullback(s.Pullback)
	l.SetReleaseAngle(s.ReleaseAngle)
	l.SetCounterweightMass(s.CounterweightMass)
	l.SetSlingLength(s.SlingLength)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}
