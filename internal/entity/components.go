package entity

import "github.com/samdwyer/gloomcrawl/internal/gamedata"

// AIKind selects the behaviour an AI component runs each turn.
type AIKind int

const (
	AIHostile AIKind = iota
	AIConfused
)

// String returns a human-readable AI kind.
func (k AIKind) String() string {
	switch k {
	case AIHostile:
		return "hostile"
	case AIConfused:
		return "confused"
	default:
		return "unknown"
	}
}

// AI is the behaviour component of non-player actors.
type AI struct {
	Kind AIKind
	// TurnsLeft counts down while confused.
	TurnsLeft int
	// Previous is restored when a temporary behaviour wears off.
	Previous *AI
}

// Hostile returns a chasing AI.
func Hostile() *AI {
	return &AI{Kind: AIHostile}
}

// Confused wraps the current AI for the given number of turns.
func Confused(previous *AI, turns int) *AI {
	return &AI{Kind: AIConfused, TurnsLeft: turns, Previous: previous}
}

// EffectKind tags what a consumable does.
type EffectKind int

const (
	EffectHealing EffectKind = iota
	EffectLightning
	EffectConfusion
	EffectFireball
)

// String returns the effect name.
func (k EffectKind) String() string {
	switch k {
	case EffectHealing:
		return "healing"
	case EffectLightning:
		return "lightning"
	case EffectConfusion:
		return "confusion"
	case EffectFireball:
		return "fireball"
	default:
		return "unknown"
	}
}

// Consumable describes a single-use effect as data. Amount is the healing
// or damage, Range the lightning reach, Radius the blast and Turns the
// confusion duration.
type Consumable struct {
	Effect EffectKind
	Amount int
	Range  int
	Radius int
	Turns  int
}

// NeedsTarget reports whether using the item requires picking a map position.
func (c *Consumable) NeedsTarget() bool {
	return c.Effect == EffectConfusion || c.Effect == EffectFireball
}

// ConsumableFromDef converts loaded item data into a component.
func ConsumableFromDef(def *gamedata.ItemDef) *Consumable {
	c := &Consumable{
		Amount: def.Amount,
		Range:  def.Range,
		Radius: def.Radius,
		Turns:  def.Turns,
	}
	switch def.Effect {
	case gamedata.EffectHealing:
		c.Effect = EffectHealing
	case gamedata.EffectLightning:
		c.Effect = EffectLightning
	case gamedata.EffectConfusion:
		c.Effect = EffectConfusion
	case gamedata.EffectFireball:
		c.Effect = EffectFireball
	default:
		panic("entity: unknown item effect " + string(def.Effect))
	}
	return c
}
