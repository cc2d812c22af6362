package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gloomcrawl/internal/action"
)

var runeDirections = map[rune]action.Point{
	'q': {X: -1, Y: -1},
	'w': {X: 0, Y: -1},
	'e': {X: 1, Y: -1},
	'a': {X: -1, Y: 0},
	'd': {X: 1, Y: 0},
	'z': {X: -1, Y: 1},
	'x': {X: 0, Y: 1},
	's': {X: 0, Y: 1},
	'c': {X: 1, Y: 1},
}

var keyDirections = map[tcell.Key]action.Point{
	tcell.KeyUp:    {X: 0, Y: -1},
	tcell.KeyDown:  {X: 0, Y: 1},
	tcell.KeyLeft:  {X: -1, Y: 0},
	tcell.KeyRight: {X: 1, Y: 0},
}

// direction reports the movement vector bound to ev, if any. Letters are
// matched case-insensitively so a shifted letter still moves the cursor.
func direction(ev *tcell.EventKey) (action.Point, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		d, ok := runeDirections[r]
		return d, ok
	}
	d, ok := keyDirections[ev.Key()]
	return d, ok
}

// stepScale is the cursor multiplier for the held modifier: shift 5,
// ctrl 10, alt 20. An uppercase letter counts as shift.
func stepScale(ev *tcell.EventKey) int {
	mod := ev.Modifiers()
	switch {
	case mod&tcell.ModAlt != 0:
		return 20
	case mod&tcell.ModCtrl != 0:
		return 10
	case mod&tcell.ModShift != 0:
		return 5
	}
	if upperRune(ev) {
		return 5
	}
	return 1
}

func upperRune(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() >= 'A' && ev.Rune() <= 'Z'
}
