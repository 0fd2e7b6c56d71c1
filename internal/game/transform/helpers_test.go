package transform_test

import (
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/dice"
	"github.com/cory-johannsen/morph/internal/game/inventory"
	"github.com/cory-johannsen/morph/internal/game/message"
	"github.com/cory-johannsen/morph/internal/game/transform"
	"github.com/cory-johannsen/morph/internal/game/world"
	"github.com/cory-johannsen/morph/internal/testutil"
)

var testRows = []string{
	"#####",
	"#...#",
	"#.W.#",
	"#...#",
	"#####",
}

type harness struct {
	c     *transform.Controller
	p     *character.Player
	msgs  *message.Buffer
	level *world.Level
	reg   *inventory.Registry
}

// newHarness wires a controller to a real level and message buffer. Every
// random2 draw returns roll (clamped to the bound).
func newHarness(t testutil.T, species character.Species, roll int, opts ...character.Option) *harness {
	t.Helper()
	return newHarnessWithSource(t, species, testutil.FixedSource{V: roll}, opts...)
}

func newHarnessWithSource(t testutil.T, species character.Species, src dice.Source, opts ...character.Option) *harness {
	t.Helper()
	level, err := world.NewLevel("test", "Test", testRows, character.Pos{X: 1, Y: 1})
	require.NoError(t, err)
	msgs := message.NewBuffer()
	level.SetMessenger(msgs)
	c, err := transform.NewController(transform.Deps{
		Table:    transform.DefaultTable(),
		Roller:   dice.NewLoggedRoller(src, zap.NewNop()),
		Messages: msgs,
		Logger:   zap.NewNop(),
	}.WithWorld(level))
	require.NoError(t, err)
	p := testutil.NewPlayer(t, species, opts...)
	level.Place(p)
	return &harness{c: c, p: p, msgs: msgs, level: level, reg: testutil.ItemRegistry(t)}
}

func (h *harness) equip(t testutil.T, itemID string) inventory.ItemInstance {
	t.Helper()
	return testutil.Equip(t, h.p, h.reg, itemID)
}

func (h *harness) enter(t testutil.T, form character.Form, power int) transform.Result {
	t.Helper()
	res, err := h.c.Enter(h.p, form, power)
	require.NoError(t, err)
	return res
}

// wornSnapshot records which instance occupies each slot.
func wornSnapshot(p *character.Player) map[inventory.Slot]string {
	out := make(map[inventory.Slot]string)
	for _, s := range p.Equipment.Worn() {
		id, _ := p.Equipment.InstanceID(s)
		out[s] = id
	}
	return out
}

// livingSpecies are the species that can take every form.
var livingSpecies = []character.Species{
	character.Human, character.Kenku, character.Naga, character.Centaur,
	character.Merfolk, character.Gnome, character.MountainDwarf, character.Troll,
}
