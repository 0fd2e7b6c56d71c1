package world

import (
	"fmt"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/inventory"
)

// Entangle throws net over p: the net lands on p's cell, holding p in place.
//
// Precondition: net.Kind is inventory.KindNet.
// Postcondition: p.Held is true and NetAt(p.Pos) returns the net.
func (l *Level) Entangle(p *character.Player, net inventory.ItemInstance) error {
	if net.Kind != inventory.KindNet {
		return fmt.Errorf("%s is not a net", net.Name)
	}
	net.Trapping = true
	l.floor.Drop(p.Pos.Key(), net)
	p.Held = true
	return nil
}

// NetAt returns the net holding someone at pos.
func (l *Level) NetAt(pos character.Pos) (inventory.ItemInstance, bool) {
	return l.floor.TrappingNet(pos.Key())
}

// DestroyNet removes the trapping net at pos from the level entirely.
func (l *Level) DestroyNet(pos character.Pos) bool {
	net, ok := l.NetAt(pos)
	if !ok {
		return false
	}
	return l.floor.Destroy(pos.Key(), net.InstanceID)
}

// ReleaseNet leaves the trapping net at pos lying on the floor, no longer holding anyone.
func (l *Level) ReleaseNet(pos character.Pos) bool {
	net, ok := l.NetAt(pos)
	if !ok {
		return false
	}
	return l.floor.SetTrapping(pos.Key(), net.InstanceID, false)
}

// DropAt places inst on the floor at pos.
func (l *Level) DropAt(pos character.Pos, inst inventory.ItemInstance) {
	l.floor.Drop(pos.Key(), inst)
}

// ItemsAt lists what lies on the floor at pos.
func (l *Level) ItemsAt(pos character.Pos) []inventory.ItemInstance {
	return l.floor.ItemsAt(pos.Key())
}
