package inventory

// Equipment maps each worn slot to the instance id of the item occupying it.
// Equipped items stay in the Backpack; Equipment only records which ones are worn.
type Equipment struct {
	slots map[Slot]string
}

// NewEquipment returns an Equipment with every slot empty.
func NewEquipment() *Equipment {
	return &Equipment{slots: make(map[Slot]string)}
}

// Occupied reports whether anything is worn in slot.
func (e *Equipment) Occupied(slot Slot) bool {
	_, ok := e.slots[slot]
	return ok
}

// InstanceID returns the id of the item worn in slot.
func (e *Equipment) InstanceID(slot Slot) (string, bool) {
	id, ok := e.slots[slot]
	return id, ok
}

// Set records instanceID as worn in slot, replacing any previous occupant.
//
// Precondition: slot.Valid().
func (e *Equipment) Set(slot Slot, instanceID string) {
	e.slots[slot] = instanceID
}

// Clear empties slot. Clearing an empty slot is a no-op.
//
// Postcondition: Occupied(slot) is false.
func (e *Equipment) Clear(slot Slot) {
	delete(e.slots, slot)
}

// SlotOf returns the slot instanceID is worn in, if any.
func (e *Equipment) SlotOf(instanceID string) (Slot, bool) {
	for s, id := range e.slots {
		if id == instanceID {
			return s, true
		}
	}
	return 0, false
}

// Worn returns the occupied slots in ascending order.
func (e *Equipment) Worn() []Slot {
	var set SlotSet
	for s := range e.slots {
		set = set.Add(s)
	}
	return set.Sorted()
}
