package entity

import "fmt"

// Fighter holds combat stats. 0 <= HP <= MaxHP always holds.
type Fighter struct {
	HP, MaxHP int
	Power     int
	Defense   int
}

// NewFighter creates a fighter at full health. A non-positive max hp is a
// programming error.
func NewFighter(maxHP, defense, power int) *Fighter {
	if maxHP <= 0 {
		panic(fmt.Sprintf("entity: fighter max hp must be positive, got %d", maxHP))
	}
	return &Fighter{
		HP:      maxHP,
		MaxHP:   maxHP,
		Power:   power,
		Defense: defense,
	}
}

// TakeDamage reduces HP and returns actual damage taken.
func (f *Fighter) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, f.HP)
	f.HP -= actual
	return actual
}

// Heal restores HP and returns actual amount healed.
func (f *Fighter) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, f.MaxHP-f.HP)
	f.HP += actual
	return actual
}

// IsDead reports whether hp has reached zero.
func (f *Fighter) IsDead() bool { return f.HP <= 0 }
