package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gloomcrawl/internal/action"
	"github.com/samdwyer/gloomcrawl/internal/entity"
	"github.com/samdwyer/gloomcrawl/internal/gamedata"
	"github.com/samdwyer/gloomcrawl/internal/input"
	"github.com/samdwyer/gloomcrawl/internal/msglog"
	"github.com/samdwyer/gloomcrawl/internal/world"
)

func newTestScreen(t *testing.T) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := Wrap(sim)
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	sim.SetSize(80, 25)
	t.Cleanup(s.Close)
	return s
}

func testFrame() Frame {
	m := world.New(30, 15, 30, 15)
	for y := 1; y < 14; y++ {
		for x := 1; x < 29; x++ {
			m.SetTile(x, y, world.Floor())
		}
	}
	player := entity.NewPlayer(5, 5)
	m.Add(player)
	m.UpdateFOV(player.X, player.Y, world.FOVRadius)

	log := msglog.New()
	log.Add("Hello", tcell.ColorWhite)
	return Frame{Map: m, Player: player, Log: log}
}

// row reads one screen row back as a string.
func row(s *Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		ch, _ := s.Content(x, y)
		if ch == 0 {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func TestRenderMapAndHUD(t *testing.T) {
	s := newTestScreen(t)
	f := testFrame()
	NewRenderer(s).Render(f)

	if ch, _ := s.Content(5, 5); ch != '@' {
		t.Errorf("player cell = %q, want '@'", ch)
	}
	if ch, _ := s.Content(6, 5); ch != '.' {
		t.Errorf("floor cell = %q, want '.'", ch)
	}
	if got := row(s, 16, barWidth); !strings.Contains(got, "HP: 30/30") {
		t.Errorf("bar row = %q, want HP: 30/30", got)
	}
	if got := row(s, 16, 80); !strings.Contains(got, "Hello") {
		t.Errorf("message row = %q, want Hello", got)
	}
}

func TestRenderInventoryMenu(t *testing.T) {
	s := newTestScreen(t)
	f := testFrame()
	f.Player.Inventory.Add(entity.NewItem(&gamedata.ItemDef{
		ID: "p", Name: "Health Potion", Glyph: "!", Color: "#7F00FF", Effect: gamedata.EffectHealing,
	}, 0, 0))
	f.State.Mode = input.ModeUseInventory
	NewRenderer(s).Render(f)

	found := false
	for y := 0; y < 5; y++ {
		if strings.Contains(row(s, y, 80), "(a) Health Potion") {
			found = true
		}
	}
	if !found {
		t.Error("inventory menu does not list (a) Health Potion")
	}
}

func TestRenderTargetCursor(t *testing.T) {
	s := newTestScreen(t)
	f := testFrame()
	f.State.Mode = input.ModeTarget
	f.State.Cursor = action.Point{X: 7, Y: 6}
	NewRenderer(s).Render(f)

	_, style := s.Content(7, 6)
	if _, _, attr := style.Decompose(); attr&tcell.AttrReverse == 0 {
		t.Error("target cell is not reverse video")
	}
	_, style = s.Content(8, 6)
	if _, _, attr := style.Decompose(); attr&tcell.AttrReverse != 0 {
		t.Error("cell next to the cursor is reverse video")
	}
}

func TestRenderNamesUnderMouse(t *testing.T) {
	s := newTestScreen(t)
	f := testFrame()
	f.State.Mouse = action.Point{X: 5, Y: 5}
	NewRenderer(s).Render(f)

	if got := row(s, 15, 80); !strings.Contains(got, "Player") {
		t.Errorf("names row = %q, want Player", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc" {
		t.Errorf("truncate() = %q, want %q", got, "abc")
	}
	if got := truncate("ab", 3); got != "ab" {
		t.Errorf("truncate() = %q, want %q", got, "ab")
	}
}
