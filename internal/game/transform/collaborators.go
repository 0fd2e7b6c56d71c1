package transform

import (
	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/inventory"
)

//go:generate mockgen -destination=mock/mock_collaborators.go -package=transformmock github.com/cory-johannsen/morph/internal/game/transform Terrain,NetTrap,ItemPlacer,ButcherCanceller,FlavorHook

// Terrain re-validates the player's position after a change in locomotion.
type Terrain interface {
	Revalidate(p *character.Player)
}

// NetTrap finds and disposes of the net holding a player.
type NetTrap interface {
	NetAt(pos character.Pos) (inventory.ItemInstance, bool)
	// DestroyNet removes the net from the world.
	DestroyNet(pos character.Pos) bool
	// ReleaseNet leaves the net lying where it is, holding nobody.
	ReleaseNet(pos character.Pos) bool
}

// ItemPlacer puts items on the ground.
type ItemPlacer interface {
	DropAt(pos character.Pos, inst inventory.ItemInstance)
}

// World is a level that serves every spatial collaborator at once.
type World interface {
	Terrain
	NetTrap
	ItemPlacer
}

// ButcherCanceller stops a multi-turn butchering action.
type ButcherCanceller interface {
	StopButchering(p *character.Player) bool
}

// FlavorHook may replace the entry message of a form for a given player.
type FlavorHook interface {
	EntryMessage(p *character.Player, form character.Form) (string, bool)
}

// DelayCanceller cancels butchering through the player's own delay queue.
type DelayCanceller struct{}

// StopButchering implements ButcherCanceller.
func (DelayCanceller) StopButchering(p *character.Player) bool {
	return p.Delays.StopButchering()
}
