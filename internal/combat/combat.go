// Package combat resolves damage between actors and what happens when one dies.
package combat

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gloomcrawl/internal/entity"
	"github.com/samdwyer/gloomcrawl/internal/gamedata"
)

// Note is a message produced while resolving combat, ready for the log.
type Note struct {
	Text  string
	Color tcell.Color
}

// Outcome contains the result of one melee exchange.
type Outcome struct {
	Damage int  // hp actually removed
	Killed bool // defender died from this hit
	Notes  []Note
}

// Melee resolves attacker hitting defender: damage is power minus defense.
// Zero or negative damage still counts as an attack, it just does nothing.
func Melee(attacker, defender *entity.Entity) Outcome {
	mustFight(attacker)
	mustFight(defender)

	damage := attacker.Fighter.Power - defender.Fighter.Defense
	desc := fmt.Sprintf("%s attacks %s", strings.ToUpper(attacker.Name), defender.Name)

	color := gamedata.ColorEnemyAttack
	if attacker.Player {
		color = gamedata.ColorPlayerAttack
	}

	if damage <= 0 {
		return Outcome{Notes: []Note{{Text: desc + " but does no damage.", Color: color}}}
	}

	out := Outcome{Notes: []Note{{Text: fmt.Sprintf("%s for %d hit points.", desc, damage), Color: color}}}
	dealt, notes := Damage(defender, damage)
	out.Damage = dealt
	out.Killed = defender.Fighter.IsDead()
	out.Notes = append(out.Notes, notes...)
	return out
}

// Damage removes hp from target and handles its death. It returns the hp
// actually removed plus any death note.
func Damage(target *entity.Entity, amount int) (int, []Note) {
	mustFight(target)
	if target.Fighter.IsDead() {
		return 0, nil
	}
	dealt := target.Fighter.TakeDamage(amount)
	if target.Fighter.IsDead() {
		return dealt, []Note{Die(target)}
	}
	return dealt, nil
}

// Die turns a freshly killed actor into a corpse. The player keeps its
// place on the map but stops acting.
func Die(e *entity.Entity) Note {
	if e.Player {
		e.Glyph = '%'
		e.FG = gamedata.ColorCorpse
		return Note{Text: "You died!", Color: gamedata.ColorPlayerDie}
	}

	note := Note{Text: e.Name + " is dead!", Color: gamedata.ColorEnemyDie}
	e.Glyph = '%'
	e.FG = gamedata.ColorCorpse
	e.BlocksMovement = false
	e.AI = nil
	e.Name = "Remains of " + e.Name
	e.RenderOrder = entity.RenderCorpse
	return note
}

func mustFight(e *entity.Entity) {
	if e == nil || e.Fighter == nil {
		panic("combat: actor without a fighter component")
	}
}
