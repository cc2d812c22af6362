// Package input turns raw terminal events into mode changes and candidate
// actions. It never touches the world; the turn controller applies what it
// returns.
package input

// Mode selects which key bindings are live.
type Mode int

const (
	// ModeGame is normal play: movement, waiting, picking up.
	ModeGame Mode = iota
	// ModeLog browses the message history.
	ModeLog
	// ModeUseInventory picks an item to use.
	ModeUseInventory
	// ModeDropInventory picks an item to drop.
	ModeDropInventory
	// ModeTarget moves a cursor over the map, for look or targeted items.
	ModeTarget
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeGame:
		return "game"
	case ModeLog:
		return "log"
	case ModeUseInventory:
		return "use_inventory"
	case ModeDropInventory:
		return "drop_inventory"
	case ModeTarget:
		return "target"
	default:
		return "unknown"
	}
}
