package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gloomcrawl/internal/action"
	"github.com/samdwyer/gloomcrawl/internal/entity"
	"github.com/samdwyer/gloomcrawl/internal/gamedata"
)

// MsgInvalidEntry is shown when an inventory letter has no item.
const MsgInvalidEntry = "Invalid entry."

// MsgSelectTarget prompts for a map position.
const MsgSelectTarget = "Select a target location."

// SelectFunc builds the action for a confirmed target, in world
// coordinates. A nil SelectFunc makes target mode a plain look cursor.
type SelectFunc func(x, y int) *action.Action

// State is everything the input layer remembers between events.
type State struct {
	Mode      Mode
	LogCursor int
	// Cursor is the target cursor in viewport coordinates.
	Cursor action.Point
	// Mouse is the last pointer position in viewport coordinates.
	Mouse  action.Point
	Select SelectFunc
}

// View is the read-only slice of the world that transitions depend on.
type View struct {
	PlayerX, PlayerY      int
	CameraX, CameraY      int
	ViewWidth, ViewHeight int
	MessageCount          int
	Inventory             *entity.Inventory
}

// Output is the result of one transition. Action is nil when the event
// does not ask for a turn. Notice, if set, goes to the message log in
// NoticeColor.
type Output struct {
	State       State
	Action      *action.Action
	Notice      string
	NoticeColor tcell.Color
}

// Transition maps one event to the next state. It is a pure function of
// its arguments.
func Transition(st State, v View, ev tcell.Event) Output {
	if mouse, ok := ev.(*tcell.EventMouse); ok {
		return handleMouse(st, v, mouse)
	}
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return Output{State: st}
	}

	switch st.Mode {
	case ModeGame:
		return gameKey(st, v, key)
	case ModeLog:
		return logKey(st, v, key)
	case ModeUseInventory, ModeDropInventory:
		return inventoryKey(st, v, key)
	case ModeTarget:
		return targetKey(st, v, key)
	default:
		return Output{State: toGame(st)}
	}
}

func toGame(st State) State {
	st.Mode = ModeGame
	st.Select = nil
	return st
}

func gameKey(st State, v View, ev *tcell.EventKey) Output {
	if d, ok := direction(ev); ok && !upperRune(ev) {
		a := action.Bump(d.X, d.Y)
		return Output{State: st, Action: &a}
	}
	if ev.Key() != tcell.KeyRune {
		return Output{State: st}
	}

	switch ev.Rune() {
	case '.':
		a := action.Wait()
		return Output{State: st, Action: &a}
	case 'g':
		a := action.Pickup()
		return Output{State: st, Action: &a}
	case 'v':
		st.Mode = ModeLog
		st.LogCursor = max(v.MessageCount-1, 0)
	case 'i':
		st.Mode = ModeUseInventory
	case 'k':
		st.Mode = ModeDropInventory
	case '/':
		st = enterTarget(st, v, nil)
	}
	return Output{State: st}
}

func logKey(st State, v View, ev *tcell.EventKey) Output {
	last := max(v.MessageCount-1, 0)

	var adjust int
	switch ev.Key() {
	case tcell.KeyHome:
		st.LogCursor = 0
		return Output{State: st}
	case tcell.KeyEnd:
		st.LogCursor = last
		return Output{State: st}
	case tcell.KeyUp:
		adjust = -1
	case tcell.KeyDown:
		adjust = 1
	case tcell.KeyPgUp:
		adjust = -10
	case tcell.KeyPgDn:
		adjust = 10
	default:
		return Output{State: toGame(st)}
	}

	switch {
	case adjust < 0 && st.LogCursor == 0:
		st.LogCursor = last
	case adjust > 0 && st.LogCursor == last:
		st.LogCursor = 0
	default:
		st.LogCursor = min(max(st.LogCursor+adjust, 0), last)
	}
	return Output{State: st}
}

func inventoryKey(st State, v View, ev *tcell.EventKey) Output {
	if ev.Key() != tcell.KeyRune || ev.Rune() < 'a' || ev.Rune() > 'z' {
		return Output{State: toGame(st)}
	}

	var item *entity.Entity
	if v.Inventory != nil {
		item = v.Inventory.Slot(int(ev.Rune() - 'a'))
	}
	if item == nil {
		return Output{State: st, Notice: MsgInvalidEntry, NoticeColor: gamedata.ColorInvalid}
	}

	if st.Mode == ModeDropInventory {
		a := action.Drop(item)
		return Output{State: toGame(st), Action: &a}
	}

	if item.Consumable != nil && item.Consumable.NeedsTarget() {
		sel := func(x, y int) *action.Action {
			a := action.UseItem(item, &action.Point{X: x, Y: y})
			return &a
		}
		return Output{
			State:       enterTarget(st, v, sel),
			Notice:      MsgSelectTarget,
			NoticeColor: gamedata.ColorNeedsTarget,
		}
	}

	a := action.UseItem(item, nil)
	return Output{State: toGame(st), Action: &a}
}

func enterTarget(st State, v View, sel SelectFunc) State {
	st.Mode = ModeTarget
	st.Select = sel
	st.Cursor = action.Point{X: v.PlayerX - v.CameraX, Y: v.PlayerY - v.CameraY}
	return st
}

func targetKey(st State, v View, ev *tcell.EventKey) Output {
	if d, ok := direction(ev); ok {
		scale := stepScale(ev)
		st.Cursor = clampToView(v, st.Cursor.X+d.X*scale, st.Cursor.Y+d.Y*scale)
		return Output{State: st}
	}
	if ev.Key() == tcell.KeyEnter {
		return confirm(st, v)
	}
	return Output{State: toGame(st)}
}

func confirm(st State, v View) Output {
	sel := st.Select
	out := Output{State: toGame(st)}
	if sel != nil {
		out.Action = sel(st.Cursor.X+v.CameraX, st.Cursor.Y+v.CameraY)
	}
	return out
}

func handleMouse(st State, v View, ev *tcell.EventMouse) Output {
	x, y := ev.Position()
	inView := x >= 0 && x < v.ViewWidth && y >= 0 && y < v.ViewHeight
	if inView {
		st.Mouse = action.Point{X: x, Y: y}
	}
	if st.Mode != ModeTarget || !inView {
		return Output{State: st}
	}

	st.Cursor = action.Point{X: x, Y: y}
	if ev.Buttons()&tcell.Button1 != 0 {
		return confirm(st, v)
	}
	return Output{State: st}
}

func clampToView(v View, x, y int) action.Point {
	return action.Point{
		X: min(max(x, 0), max(v.ViewWidth-1, 0)),
		Y: min(max(y, 0), max(v.ViewHeight-1, 0)),
	}
}
