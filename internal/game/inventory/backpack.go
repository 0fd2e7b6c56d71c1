package inventory

import (
	"fmt"

	"github.com/google/uuid"
)

// ItemInstance is a concrete item carried by the player or lying on the floor.
// Properties the transformation engine queries are copied from the def so the
// instance can be inspected without the registry.
type ItemInstance struct {
	InstanceID string
	ItemDefID  string
	Name       string
	Kind       string
	Quantity   int
	Cursed     bool
	HardHelmet bool
	Trapping   bool // a net currently holding someone in place
	slot       Slot
	wearable   bool
}

// EquipSlot returns the slot the instance is worn in, or false when it cannot be worn.
func (i ItemInstance) EquipSlot() (Slot, bool) {
	return i.slot, i.wearable
}

// YourName returns the possessive, capitalised name used in removal messages.
func (i ItemInstance) YourName() string {
	return "Your " + i.Name
}

// NewInstance creates a fresh instance of def with a unique id.
//
// Precondition: def is non-nil and valid; quantity > 0.
func NewInstance(def *ItemDef, quantity int) ItemInstance {
	slot, wearable := def.EquipSlot()
	return ItemInstance{
		InstanceID: uuid.New().String(),
		ItemDefID:  def.ID,
		Name:       def.Name,
		Kind:       def.Kind,
		Quantity:   quantity,
		Cursed:     def.Cursed,
		HardHelmet: def.HardHelmet,
		slot:       slot,
		wearable:   wearable,
	}
}

// Backpack is the player's pack: an ordered container with a slot limit.
type Backpack struct {
	MaxSlots int
	items    []ItemInstance
}

// NewBackpack creates a Backpack with the given limit.
//
// Precondition: maxSlots >= 0.
// Postcondition: returned Backpack has zero items.
func NewBackpack(maxSlots int) *Backpack {
	return &Backpack{MaxSlots: maxSlots}
}

// Add places a new instance of itemDefID into the backpack.
// It is atomic: if limits would be exceeded, no state is modified.
//
// Precondition: quantity > 0, itemDefID exists in reg.
// Postcondition: on success the new instance is the last item in Items().
func (b *Backpack) Add(itemDefID string, quantity int, reg *Registry) (ItemInstance, error) {
	def, ok := reg.Item(itemDefID)
	if !ok {
		return ItemInstance{}, fmt.Errorf("backpack: unknown item %q", itemDefID)
	}
	if quantity <= 0 {
		return ItemInstance{}, fmt.Errorf("backpack: quantity must be > 0")
	}
	return b.Insert(NewInstance(def, quantity))
}

// Insert places an existing instance into the backpack, e.g. one picked up from the floor.
//
// Postcondition: on error, backpack state is unchanged.
func (b *Backpack) Insert(inst ItemInstance) (ItemInstance, error) {
	if len(b.items)+1 > b.MaxSlots {
		return ItemInstance{}, fmt.Errorf("backpack: not enough slots")
	}
	b.items = append(b.items, inst)
	return inst, nil
}

// Remove takes the instance identified by instanceID out of the backpack.
//
// Postcondition: on success the instance is no longer in Items().
func (b *Backpack) Remove(instanceID string) (ItemInstance, error) {
	for i := range b.items {
		if b.items[i].InstanceID == instanceID {
			inst := b.items[i]
			b.items = append(b.items[:i], b.items[i+1:]...)
			return inst, nil
		}
	}
	return ItemInstance{}, fmt.Errorf("backpack: instance %q not found", instanceID)
}

// Get returns a copy of the instance identified by instanceID.
func (b *Backpack) Get(instanceID string) (ItemInstance, bool) {
	for _, inst := range b.items {
		if inst.InstanceID == instanceID {
			return inst, true
		}
	}
	return ItemInstance{}, false
}

// SetCursed binds or releases the instance identified by instanceID.
func (b *Backpack) SetCursed(instanceID string, cursed bool) bool {
	for i := range b.items {
		if b.items[i].InstanceID == instanceID {
			b.items[i].Cursed = cursed
			return true
		}
	}
	return false
}

// TakeAll empties the backpack and returns its former contents in order.
//
// Postcondition: UsedSlots() == 0.
func (b *Backpack) TakeAll() []ItemInstance {
	out := b.items
	b.items = nil
	return out
}

// Items returns a snapshot copy of all items in the backpack.
//
// Postcondition: returned slice is a copy; mutations do not affect the backpack.
func (b *Backpack) Items() []ItemInstance {
	out := make([]ItemInstance, len(b.items))
	copy(out, b.items)
	return out
}

// UsedSlots returns the number of occupied slots.
func (b *Backpack) UsedSlots() int {
	return len(b.items)
}

// FindByItemDefID returns all instances matching the given item definition ID.
//
// Postcondition: returned slice is a copy.
func (b *Backpack) FindByItemDefID(itemDefID string) []ItemInstance {
	var out []ItemInstance
	for _, inst := range b.items {
		if inst.ItemDefID == itemDefID {
			out = append(out, inst)
		}
	}
	return out
}
