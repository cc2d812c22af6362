package entity

// DefaultCapacity is one slot per lowercase letter.
const DefaultCapacity = 26

// Inventory is a bounded, ordered list of items owned by an actor.
type Inventory struct {
	Capacity int
	Items    []*Entity
}

// Slot pairs a selection letter with an item name for menus.
type Slot struct {
	Letter rune
	Name   string
}

// NewInventory creates an empty inventory with the given capacity.
func NewInventory(capacity int) *Inventory {
	return &Inventory{
		Capacity: capacity,
		Items:    make([]*Entity, 0, capacity),
	}
}

// Full reports whether no more items fit.
func (inv *Inventory) Full() bool {
	return len(inv.Items) >= inv.Capacity
}

// Add appends an item and takes ownership of it. It returns false when full.
func (inv *Inventory) Add(item *Entity) bool {
	if inv.Full() {
		return false
	}
	inv.Items = append(inv.Items, item)
	item.SetParent(inv)
	return true
}

// Remove drops an item from the list, keeping order. It reports whether
// the item was present.
func (inv *Inventory) Remove(item *Entity) bool {
	for i, it := range inv.Items {
		if it == item {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			if item.Parent() == Parent(inv) {
				item.SetParent(nil)
			}
			return true
		}
	}
	return false
}

// Contains reports whether the item is held here.
func (inv *Inventory) Contains(item *Entity) bool {
	for _, it := range inv.Items {
		if it == item {
			return true
		}
	}
	return false
}

// Slot returns the item in slot i, or nil when the slot is empty.
func (inv *Inventory) Slot(i int) *Entity {
	if i < 0 || i >= len(inv.Items) {
		return nil
	}
	return inv.Items[i]
}

// Listing returns the letter-indexed names for selection menus.
func (inv *Inventory) Listing() []Slot {
	slots := make([]Slot, 0, len(inv.Items))
	for i, it := range inv.Items {
		slots = append(slots, Slot{Letter: rune('a' + i), Name: it.Name})
	}
	return slots
}
