package config

// SimConfig contains the fixed-tick loop configuration
type SimConfig struct {
	TickRate int // simulation ticks per second

	// Spatial partitioning for the collision space
	SpaceWidth  int
	SpaceHeight int
	CellSize    int
}

// TrajectoryConfig contains ghost-arc prediction configuration.
// TimeStep is intentionally independent of SimConfig.TickRate: the arc is a
// cheap per-frame approximation, not the authoritative integration step.
type TrajectoryConfig struct {
	TimeStep        float64 // seconds per integration step
	MaxTime         float64 // give up after this much simulated flight time
	MaxPoints       int     // hard cap on produced points
	SimplifiedBoost float64 // velocity multiplier in simplified aiming mode

	DefaultGravityY float64 // used when no environment is supplied
}

// LaunchConfig contains the trebuchet launch model tuning.
// The launch formula is a gameplay approximation, not derived mechanics.
type LaunchConfig struct {
	// Parameter clamp ranges
	MinPullback      float64
	MaxPullback      float64
	MinAngle         float64 // degrees
	MaxAngle         float64
	MinCounterweight float64 // kg
	MaxCounterweight float64
	MinSlingLength   float64 // meters
	MaxSlingLength   float64

	// Defaults restored by ResetToDefaults
	DefaultPullback      float64
	DefaultAngle         float64
	DefaultCounterweight float64
	DefaultSlingLength   float64

	MaxLaunchSpeed float64 // m/s at all-max parameters
	Efficiency     float64 // energy transfer fudge factor
}

// DamageConfig contains the impact damage pipeline tuning
type DamageConfig struct {
	VelocityDivisor float64 // damage scales by |velocity| / this
	WeakPointMult   float64

	// Damage-type resistances, applied after material/ammo modifiers
	FireOnUnburnableMult float64 // fire vs non-flammable material
	PlagueMult           float64 // plague is always resisted
	StructuralMult       float64 // cascade damage is amplified

	// Ammo-vs-material modifier table. MaterialAny matches every material.
	// Data rather than branching so new pairs don't touch the pipeline.
	Modifiers map[AmmoType]map[MaterialType]float64
}

// ModifierFor returns the multiplicative ammo-vs-material modifier, 1.0 when
// no entry applies. A MaterialAny row stacks with a material-specific row.
func (d DamageConfig) ModifierFor(ammo AmmoType, material MaterialType) float64 {
	row, ok := d.Modifiers[ammo]
	if !ok {
		return 1.0
	}
	mod := 1.0
	if m, ok := row[MaterialAny]; ok {
		mod *= m
	}
	if m, ok := row[material]; ok {
		mod *= m
	}
	return mod
}

// CollapseConfig contains support-propagation tuning
type CollapseConfig struct {
	SupportRatioThreshold float64 // collapse when supportRatio strictly below this
	HealthRatioThreshold  float64 // collapse when health strictly below this fraction of max
	HeavyMass             float64 // mass above which a node needs extra support
	HeavySupportThreshold float64 // support ratio heavy nodes must keep

	MaxDepth   int // shared budget for one whole reaction tree, not per branch
	DelayTicks int // ticks between a destruction and evaluating its dependents
}

// EffectsConfig contains secondary-effect (burn/weaken/chain) tuning
type EffectsConfig struct {
	BurnStartRadiusFrac float64 // burn area grows from this fraction to full radius
	ChainBonusDamage    float64 // flat structural hit dealt by chain shot
	SpreadIgniteFrac    float64 // spread fires burn at this fraction of parent DPS
}

var Sim SimConfig
var Trajectory TrajectoryConfig
var Launch LaunchConfig
var Damage DamageConfig
var Collapse CollapseConfig
var Effects EffectsConfig

func init() {
	Sim = SimConfig{
		TickRate:    60,
		SpaceWidth:  512,
		SpaceHeight: 256,
		CellSize:    4,
	}

	Trajectory = TrajectoryConfig{
		TimeStep:        0.05,
		MaxTime:         5.0,
		MaxPoints:       100,
		SimplifiedBoost: 1.15,
		DefaultGravityY: -9.81,
	}

	Launch = LaunchConfig{
		MinPullback:      0.0,
		MaxPullback:      1.0,
		MinAngle:         20.0,
		MaxAngle:         75.0,
		MinCounterweight: 50.0,
		MaxCounterweight: 500.0,
		MinSlingLength:   1.0,
		MaxSlingLength:   5.0,

		DefaultPullback:      0.75,
		DefaultAngle:         45.0,
		DefaultCounterweight: 300.0,
		DefaultSlingLength:   3.0,

		MaxLaunchSpeed: 40.0,
		Efficiency:     0.85,
	}

	Damage = DamageConfig{
		VelocityDivisor: 10.0,
		WeakPointMult:   2.0,

		FireOnUnburnableMult: 0.1,
		PlagueMult:           0.5,
		StructuralMult:       1.5,

		Modifiers: map[AmmoType]map[MaterialType]float64{
			AmmoChain: {
				MaterialWood: 1.5,
			},
			AmmoHeavy: {
				MaterialAny: 2.0,
			},
			AmmoStandard: {
				MaterialIron: 0.5,
			},
		},
	}

	Collapse = CollapseConfig{
		SupportRatioThreshold: 0.5,
		HealthRatioThreshold:  0.3,
		HeavyMass:             50.0,
		HeavySupportThreshold: 0.7,

		MaxDepth:   5,
		DelayTicks: 18, // ~0.3s at 60 tps, lets destruction feedback land first
	}

	Effects = EffectsConfig{
		BurnStartRadiusFrac: 0.6,
		ChainBonusDamage:    15.0,
		SpreadIgniteFrac:    0.5,
	}
}
