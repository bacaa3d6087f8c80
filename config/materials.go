package config

import "log"

// MaterialType keys the material catalog
type MaterialType string

const (
	MaterialWood  MaterialType = "wood"
	MaterialStone MaterialType = "stone"
	MaterialIron  MaterialType = "iron"
	MaterialRope  MaterialType = "rope"

	// MaterialAny is a wildcard row in the damage modifier table,
	// never a real material.
	MaterialAny MaterialType = "*"
)

// AmmoType keys the ammunition catalog
type AmmoType string

const (
	AmmoStandard AmmoType = "standard"
	AmmoHeavy    AmmoType = "heavy"
	AmmoChain    AmmoType = "chain"
	AmmoFirebomb AmmoType = "firebomb"
	AmmoPlague   AmmoType = "plague"
)

// DamageType classifies how an impact interacts with material resistances
type DamageType string

const (
	DamageImpact     DamageType = "impact"
	DamageFire       DamageType = "fire"
	DamagePlague     DamageType = "plague"
	DamageStructural DamageType = "structural" // internal, used by cascades
)

// MaterialProfile is the immutable per-material record
type MaterialProfile struct {
	Type        MaterialType
	BaseHealth  float64
	Density     float64
	Friction    float64
	Restitution float64

	Flammable           bool
	BurnDamagePerSecond float64
	SpreadChance        float64 // per-second chance fire jumps to this material
}

// EffectKind selects which secondary effect an ammunition triggers
type EffectKind string

const (
	EffectBurn   EffectKind = "burn"
	EffectWeaken EffectKind = "weaken"
	EffectChain  EffectKind = "chain"
)

// AmmoProfile is the immutable per-ammunition record
type AmmoProfile struct {
	Type       AmmoType
	Mass       float64
	BaseDamage float64
	DamageType DamageType

	HasSecondaryEffect    bool
	EffectKind            EffectKind
	EffectRadius          float64
	EffectDuration        float64 // seconds
	EffectDamagePerSecond float64
}

// Catalog is the process-lifetime material/ammo lookup. Missing entries
// degrade to a safe default with a logged warning instead of failing.
type Catalog struct {
	materials map[MaterialType]MaterialProfile
	ammo      map[AmmoType]AmmoProfile
}

// Material returns the profile for t, or a density-1 default when t is unknown.
func (c *Catalog) Material(t MaterialType) MaterialProfile {
	if p, ok := c.materials[t]; ok {
		return p
	}
	log.Printf("Warning: unknown material %q, using default profile", t)
	return MaterialProfile{Type: t, BaseHealth: 100, Density: 1, Friction: 0.5, Restitution: 0.2}
}

// Ammo returns the profile for t, or a plain stone default when t is unknown.
func (c *Catalog) Ammo(t AmmoType) AmmoProfile {
	if p, ok := c.ammo[t]; ok {
		return p
	}
	log.Printf("Warning: unknown ammo %q, using default profile", t)
	return AmmoProfile{Type: t, Mass: 10, BaseDamage: 50, DamageType: DamageImpact}
}

// HasMaterial reports whether t is a real catalog entry
func (c *Catalog) HasMaterial(t MaterialType) bool {
	_, ok := c.materials[t]
	return ok
}

// NewCatalog builds the default catalog. Values are gameplay tuning,
// see the Damage/Effects configs for how they combine.
func NewCatalog() *Catalog {
	c := &Catalog{
		materials: make(map[MaterialType]MaterialProfile),
		ammo:      make(map[AmmoType]AmmoProfile),
	}

	for _, m := range []MaterialProfile{
		{
			Type:        MaterialWood,
			BaseHealth:  100,
			Density:     1.0,
			Friction:    0.5,
			Restitution: 0.3,

			Flammable:           true,
			BurnDamagePerSecond: 5.0,
			SpreadChance:        0.25,
		},
		{
			Type:        MaterialStone,
			BaseHealth:  300,
			Density:     5.0,
			Friction:    0.7,
			Restitution: 0.1,
		},
		{
			Type:        MaterialIron,
			BaseHealth:  500,
			Density:     10.0,
			Friction:    0.4,
			Restitution: 0.2,
		},
		{
			Type:        MaterialRope,
			BaseHealth:  40,
			Density:     0.5,
			Friction:    0.9,
			Restitution: 0.0,

			Flammable:           true,
			BurnDamagePerSecond: 10.0,
			SpreadChance:        0.5,
		},
	} {
		c.materials[m.Type] = m
	}

	for _, a := range []AmmoProfile{
		{
			Type:       AmmoStandard,
			Mass:       10,
			BaseDamage: 50,
			DamageType: DamageImpact,
		},
		{
			Type:       AmmoHeavy,
			Mass:       25,
			BaseDamage: 80,
			DamageType: DamageImpact,
		},
		{
			Type:       AmmoChain,
			Mass:       8,
			BaseDamage: 35,
			DamageType: DamageImpact,

			HasSecondaryEffect: true,
			EffectKind:         EffectChain,
			EffectRadius:       2.5,
		},
		{
			Type:       AmmoFirebomb,
			Mass:       6,
			BaseDamage: 20,
			DamageType: DamageFire,

			HasSecondaryEffect:    true,
			EffectKind:            EffectBurn,
			EffectRadius:          2.0,
			EffectDuration:        5.0,
			EffectDamagePerSecond: 10.0,
		},
		{
			Type:       AmmoPlague,
			Mass:       5,
			BaseDamage: 10,
			DamageType: DamagePlague,

			HasSecondaryEffect:    true,
			EffectKind:            EffectWeaken,
			EffectRadius:          2.5,
			EffectDuration:        6.0,
			EffectDamagePerSecond: 8.0,
		},
	} {
		c.ammo[a.Type] = a
	}

	return c
}
