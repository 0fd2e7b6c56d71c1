package inventory

import "sync"

// FloorManager tracks item instances lying on the ground, keyed by location.
// It is thread-safe via sync.RWMutex.
type FloorManager struct {
	mu    sync.RWMutex
	cells map[string][]ItemInstance
}

// NewFloorManager creates a FloorManager with nothing on the floor.
//
// Postcondition: returned FloorManager is ready for use with zero items.
func NewFloorManager() *FloorManager {
	return &FloorManager{
		cells: make(map[string][]ItemInstance),
	}
}

// Drop places an item instance on the floor at loc.
//
// Precondition: loc is non-empty; inst is a valid ItemInstance.
// Postcondition: inst is appended to the location's floor items.
func (fm *FloorManager) Drop(loc string, inst ItemInstance) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	fm.cells[loc] = append(fm.cells[loc], inst)
}

// Pickup removes and returns the item with the given instanceID from loc.
// Returns false if the item is not found.
//
// Postcondition: on failure, floor state is unchanged.
func (fm *FloorManager) Pickup(loc, instanceID string) (ItemInstance, bool) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	items := fm.cells[loc]
	for i, inst := range items {
		if inst.InstanceID == instanceID {
			fm.cells[loc] = append(items[:i], items[i+1:]...)
			if len(fm.cells[loc]) == 0 {
				delete(fm.cells, loc)
			}
			return inst, true
		}
	}
	return ItemInstance{}, false
}

// Destroy removes the item with the given instanceID from loc without returning it.
func (fm *FloorManager) Destroy(loc, instanceID string) bool {
	_, ok := fm.Pickup(loc, instanceID)
	return ok
}

// TrappingNet returns the net at loc that is currently holding someone.
func (fm *FloorManager) TrappingNet(loc string) (ItemInstance, bool) {
	fm.mu.RLock()
	defer fm.mu.RUnlock()
	for _, inst := range fm.cells[loc] {
		if inst.Kind == KindNet && inst.Trapping {
			return inst, true
		}
	}
	return ItemInstance{}, false
}

// SetTrapping marks the item at loc as holding (or no longer holding) someone.
func (fm *FloorManager) SetTrapping(loc, instanceID string, trapping bool) bool {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	for i := range fm.cells[loc] {
		if fm.cells[loc][i].InstanceID == instanceID {
			fm.cells[loc][i].Trapping = trapping
			return true
		}
	}
	return false
}

// ItemsAt returns a snapshot copy of all items on the floor at loc.
//
// Postcondition: returned slice is a copy; mutations do not affect internal state.
func (fm *FloorManager) ItemsAt(loc string) []ItemInstance {
	fm.mu.RLock()
	defer fm.mu.RUnlock()
	items := fm.cells[loc]
	out := make([]ItemInstance, len(items))
	copy(out, items)
	return out
}
