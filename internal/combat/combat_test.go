package combat

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gloomcrawl/internal/entity"
)

func newFighter(name string, hp, defense, power int) *entity.Entity {
	return entity.NewActor(0, 0, 'x', tcell.ColorWhite, name, entity.NewFighter(hp, defense, power))
}

func TestMeleeDamage(t *testing.T) {
	tests := []struct {
		name           string
		power, defense int
		wantHP         int
		wantSuffix     string
	}{
		{"power beats defense", 5, 3, 8, "for 2 hit points."},
		{"defense beats power", 2, 5, 10, "but does no damage."},
		{"equal", 4, 4, 10, "but does no damage."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attacker := newFighter("Troll", 10, 0, tt.power)
			defender := newFighter("Orc", 10, tt.defense, 0)

			out := Melee(attacker, defender)

			if defender.Fighter.HP != tt.wantHP {
				t.Errorf("defender HP = %d, want %d", defender.Fighter.HP, tt.wantHP)
			}
			if len(out.Notes) != 1 {
				t.Fatalf("len(Notes) = %d, want 1", len(out.Notes))
			}
			if !strings.HasPrefix(out.Notes[0].Text, "TROLL attacks Orc") {
				t.Errorf("note = %q, want attacker upper-cased", out.Notes[0].Text)
			}
			if !strings.HasSuffix(out.Notes[0].Text, tt.wantSuffix) {
				t.Errorf("note = %q, want suffix %q", out.Notes[0].Text, tt.wantSuffix)
			}
		})
	}
}

func TestMeleeKillsMonster(t *testing.T) {
	attacker := newFighter("Player", 30, 2, 5)
	attacker.Player = true
	orc := newFighter("Orc", 3, 0, 3)

	out := Melee(attacker, orc)

	if !out.Killed || out.Damage != 3 {
		t.Errorf("Outcome = %+v, want killed with 3 damage", out)
	}
	if len(out.Notes) != 2 || out.Notes[1].Text != "Orc is dead!" {
		t.Fatalf("Notes = %+v, want hit then death", out.Notes)
	}
	if orc.AI != nil || orc.BlocksMovement || orc.RenderOrder != entity.RenderCorpse {
		t.Error("dead monster should become a non-blocking corpse without AI")
	}
	if orc.Name != "Remains of Orc" || orc.Glyph != '%' {
		t.Errorf("corpse = %q %c, want Remains of Orc %%", orc.Name, orc.Glyph)
	}
	if orc.IsAlive() {
		t.Error("corpse should not be alive")
	}
}

func TestPlayerDeath(t *testing.T) {
	player := newFighter("Player", 5, 0, 5)
	player.Player = true
	player.AI = nil

	dealt, notes := Damage(player, 20)
	if dealt != 5 {
		t.Errorf("dealt = %d, want 5", dealt)
	}
	if len(notes) != 1 || notes[0].Text != "You died!" {
		t.Errorf("notes = %+v, want You died!", notes)
	}
	if player.IsAlive() {
		t.Error("player should be dead")
	}

	// Further damage on a dead body is a no-op.
	if dealt, notes := Damage(player, 3); dealt != 0 || notes != nil {
		t.Errorf("Damage() on dead = %d %v, want 0 nil", dealt, notes)
	}
}

func TestMeleePanicsWithoutFighter(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Melee() without a fighter should panic")
		}
	}()
	Melee(entity.New(0, 0, 'x', tcell.ColorWhite, tcell.ColorBlack, "ghost"), newFighter("Orc", 3, 0, 3))
}
