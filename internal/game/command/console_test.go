package command_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/morph/internal/game/character"
	"github.com/cory-johannsen/morph/internal/game/command"
	"github.com/cory-johannsen/morph/internal/game/condition"
	"github.com/cory-johannsen/morph/internal/game/delay"
	"github.com/cory-johannsen/morph/internal/game/dice"
	"github.com/cory-johannsen/morph/internal/game/inventory"
	"github.com/cory-johannsen/morph/internal/game/message"
	"github.com/cory-johannsen/morph/internal/game/session"
	"github.com/cory-johannsen/morph/internal/game/transform"
	"github.com/cory-johannsen/morph/internal/game/world"
	"github.com/cory-johannsen/morph/internal/testutil"
)

type fixture struct {
	console *command.Console
	sess    *session.Session
	msgs    *message.Buffer
	out     *bytes.Buffer
}

func newFixture(t *testing.T, species character.Species) *fixture {
	t.Helper()
	level, err := world.NewLevel("t", "Test", []string{
		"######",
		"#....#",
		"#..W.#",
		"######",
	}, character.Pos{X: 1, Y: 1})
	require.NoError(t, err)
	msgs := message.NewBuffer()
	level.SetMessenger(msgs)
	forms, err := transform.NewController(transform.Deps{
		Table:    transform.DefaultTable(),
		Roller:   dice.NewLoggedRoller(testutil.FixedSource{V: 0}, zap.NewNop()),
		Messages: msgs,
	}.WithWorld(level))
	require.NoError(t, err)
	sess, err := session.New(session.Deps{
		Player:       testutil.NewPlayer(t, species),
		Level:        level,
		Forms:        forms,
		Items:        testutil.ItemRegistry(t),
		Conditions:   condition.DefaultRegistry(),
		Messages:     msgs,
		DefaultPower: 10,
	})
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return &fixture{
		console: command.NewConsole(command.DefaultRegistry(), sess, out),
		sess:    sess,
		msgs:    msgs,
		out:     out,
	}
}

func (f *fixture) run(line string) string {
	return f.console.Execute(context.Background(), line)
}

func (f *fixture) give(t *testing.T, itemID string) inventory.ItemInstance {
	t.Helper()
	inst, err := f.sess.Player.Pack.Add(itemID, 1, f.sess.Items)
	require.NoError(t, err)
	return inst
}

func TestExecute_BlankAndUnknown(t *testing.T) {
	f := newFixture(t, character.Human)
	assert.Empty(t, f.run(""))
	assert.Empty(t, f.run("# a comment"))
	assert.Contains(t, f.run("dance"), `Unknown command "dance"`)
}

func TestTransform(t *testing.T) {
	f := newFixture(t, character.Human)

	assert.Empty(t, f.run("transform spider"))
	assert.Equal(t, character.FormSpider, f.sess.Player.Form.Current)
	assert.True(t, f.msgs.Contains("You turn into a venomous arachnid creature."))

	assert.Empty(t, f.run("untransform"))
	assert.Equal(t, character.FormNone, f.sess.Player.Form.Current)
	assert.Equal(t, "You are not transformed.", f.run("untransform"))
}

func TestTransform_ArgumentErrors(t *testing.T) {
	f := newFixture(t, character.Human)
	assert.Contains(t, f.run("transform"), "Usage")
	assert.Contains(t, f.run("transform none"), "Unknown form")
	assert.Contains(t, f.run("transform wolf"), "Unknown form")
	assert.Contains(t, f.run("transform bat lots"), "Power must be a number")
	assert.Equal(t, "Power must not be negative.", f.run("transform bat -3"))
	assert.Equal(t, character.FormNone, f.sess.Player.Form.Current)
}

func TestTransform_PowerAndAlias(t *testing.T) {
	f := newFixture(t, character.Human)
	assert.Empty(t, f.run(`tf "ice beast" 0`))
	assert.Equal(t, character.FormIceBeast, f.sess.Player.Form.Current)
	assert.Equal(t, 30, f.sess.Player.Form.Duration)
}

func TestTransform_CursedVeto(t *testing.T) {
	f := newFixture(t, character.Human)
	f.give(t, "cursed_gloves")
	require.Contains(t, f.run("wear cursed gloves"), "You are now wearing")
	assert.True(t, f.msgs.Contains("Oops, that feels deathly cold."))

	f.run("transform blade_hands")
	assert.Equal(t, character.FormNone, f.sess.Player.Form.Current)
	assert.True(t, f.msgs.Contains("Your cursed equipment won't allow you to complete the transformation."))
}

func TestWear_RespectsForm(t *testing.T) {
	f := newFixture(t, character.Human)
	f.give(t, "cloak")
	f.give(t, "body_armour")

	f.run("transform ice_beast")
	assert.Equal(t, "You are now wearing cloak.", f.run("wear cloak"))
	assert.Equal(t, "You can't use that in your present form.", f.run("wear body armour"))

	f.run("untransform")
	assert.Equal(t, "You are now wearing body armour.", f.run(`wear "body armour"`))
}

func TestWear_SpeciesRestriction(t *testing.T) {
	f := newFixture(t, character.Kenku)
	f.give(t, "wizard_hat")
	assert.Equal(t, "You can't use anything in the helmet slot.", f.run("wear wizard hat"))
}

func TestWear_Errors(t *testing.T) {
	f := newFixture(t, character.Human)
	f.give(t, "weapon")
	f.give(t, "bread")
	assert.Contains(t, f.run("wear"), "Usage")
	assert.Contains(t, f.run("wear crown"), "You don't have")
	assert.Contains(t, f.run("wear bread"), "You can't wear")
	assert.Contains(t, f.run("wear weapon"), "wield it instead")
	assert.Contains(t, f.run("wield bread"), "is not a weapon")
}

func TestWear_ReplacesAndCursedSticks(t *testing.T) {
	f := newFixture(t, character.Human)
	f.give(t, "cursed_amulet")
	f.give(t, "amulet")
	f.run("wear cursed_amulet")

	assert.Equal(t, "Your cursed amulet is stuck to your body!", f.run("wear amulet"))
	assert.Equal(t, "Your cursed amulet is stuck to your body!", f.run("remove amulet"))

	f2 := newFixture(t, character.Human)
	first := f2.give(t, "steel_helmet")
	f2.give(t, "wizard_hat")
	f2.run("wear steel_helmet")
	assert.Equal(t, "You are now wearing wizard hat.", f2.run("wear wizard_hat"))
	_, worn := f2.sess.Player.Equipment.SlotOf(first.InstanceID)
	assert.False(t, worn)
}

func TestWield_RespectsForm(t *testing.T) {
	f := newFixture(t, character.Human)
	f.give(t, "weapon")

	f.run("transform statue")
	assert.Equal(t, "You are now wielding weapon.", f.run("wield weapon"))
	assert.Contains(t, f.run("wield weapon"), "already using")

	f.run("untransform")
	f.run("transform blade_hands")
	assert.False(t, f.sess.Player.Equipment.Occupied(inventory.SlotWeapon), "blade hands drops the weapon")
	assert.Equal(t, "You can't use that in your present form.", f.run("wield weapon"))
}

func TestRemove(t *testing.T) {
	f := newFixture(t, character.Human)
	f.give(t, "weapon")
	f.give(t, "boots")
	f.run("wield weapon")
	f.run("wear boots")

	assert.Contains(t, f.run("remove hat"), "Unknown slot")
	assert.Equal(t, "You take off boots.", f.run("remove boots"))
	assert.Equal(t, "You aren't wearing anything there.", f.run("rm boots"))
	assert.Equal(t, "You are now empty-handed.", f.run("remove weapon"))
}

func TestWear_RingsFillBothHands(t *testing.T) {
	f := newFixture(t, character.Human)
	first := f.give(t, "left_ring")
	second := f.give(t, "left_ring")
	third := f.give(t, "left_ring")
	eq := f.sess.Player.Equipment

	assert.Equal(t, "You are now wearing left ring.", f.run("wear left_ring"))
	assert.Equal(t, "You are now wearing left ring.", f.run("wear left_ring"))
	left, _ := eq.InstanceID(inventory.SlotLeftRing)
	right, _ := eq.InstanceID(inventory.SlotRightRing)
	assert.Equal(t, first.InstanceID, left)
	assert.Equal(t, second.InstanceID, right, "second ring goes on the free hand")

	f.sess.Player.Pack.SetCursed(first.InstanceID, true)
	assert.Equal(t, "You are now wearing left ring.", f.run("wear left_ring"))
	right, _ = eq.InstanceID(inventory.SlotRightRing)
	assert.Equal(t, third.InstanceID, right, "the cursed ring stays, the other hand is swapped")
}

func TestWear_BothHandsCursed(t *testing.T) {
	f := newFixture(t, character.Human)
	f.give(t, "cursed_left_ring")
	f.give(t, "cursed_right_ring")
	f.give(t, "right_ring")
	f.run("wear cursed_left_ring")
	f.run("wear cursed_right_ring")

	assert.Contains(t, f.run("wear right_ring"), "stuck to your body")
}

func TestInventory(t *testing.T) {
	f := newFixture(t, character.Human)
	assert.Equal(t, "You aren't carrying anything.", f.run("inventory"))

	f.give(t, "cloak")
	f.give(t, "left_ring")
	f.run("wear cloak")
	f.run("curse left_ring")
	out := f.run("i")
	assert.Contains(t, out, "Pack (2/52):")
	assert.Contains(t, out, "cloak (cloak)")
	assert.Contains(t, out, "left ring {cursed}")
}

func TestWaitAndStatus(t *testing.T) {
	f := newFixture(t, character.Human)
	f.run("transform spider 0")
	status := f.run("status")
	assert.Contains(t, status, "Form: spider, 10 turns left")
	assert.Contains(t, status, "Size: tiny")
	assert.Contains(t, status, "Cannot use: weapon")

	assert.Contains(t, f.run("wait 0"), "Turns must be")
	assert.Empty(t, f.run("wait 10"))
	assert.Equal(t, character.FormNone, f.sess.Player.Form.Current)
	assert.Contains(t, f.run("@"), "(turn 10)")
}

func TestRest(t *testing.T) {
	f := newFixture(t, character.Human)
	assert.Empty(t, f.run("rest 3"))
	assert.Equal(t, 3, f.sess.Clock.Turn())
	assert.True(t, f.msgs.Contains("You finish resting."))
}

func TestButcher(t *testing.T) {
	f := newFixture(t, character.Human)
	assert.Equal(t, "You need a blade to butcher with.", f.run("butcher"))

	f.run("transform blade_hands")
	assert.Equal(t, "You start butchering the corpse.", f.run("butcher 5"))
	assert.Contains(t, f.run("status"), "Busy: butcher (5)")

	f.run("untransform")
	assert.Equal(t, 0, f.sess.Player.Delays.Len(), "losing the blades stops butchering")
}

func TestButcher_Claws(t *testing.T) {
	f := newFixture(t, character.Troll)
	assert.Equal(t, "You start butchering the corpse.", f.run("c"))
	assert.Equal(t, delay.Butcher, mustCurrent(t, f).Kind)
}

func mustCurrent(t *testing.T, f *fixture) delay.Action {
	t.Helper()
	cur, ok := f.sess.Player.Delays.Current()
	require.True(t, ok)
	return cur
}

func TestMoveAndMap(t *testing.T) {
	f := newFixture(t, character.Human)
	assert.Equal(t, "There is a wall in the way.", f.run("north"))
	assert.Empty(t, f.run("e"))
	assert.Equal(t, character.Pos{X: 2, Y: 1}, f.sess.Player.Pos)
	assert.Equal(t, 1, f.sess.Clock.Turn())

	assert.Equal(t, "######\n#.@..#\n#..W.#\n######", f.run("map"))
}

func TestFloorDropGet(t *testing.T) {
	f := newFixture(t, character.Human)
	f.give(t, "bread")
	f.give(t, "cloak")
	f.run("wear cloak")

	assert.Equal(t, "There is nothing here.", f.run("floor"))
	assert.Equal(t, "You will have to take that off first.", f.run("drop cloak"))
	assert.Equal(t, "You drop bread ration.", f.run("drop bread"))
	assert.Contains(t, f.run("look"), "bread ration")

	assert.Contains(t, f.run("get sword"), "There is no")
	assert.Equal(t, "You pick up bread ration.", f.run("get bread"))
	assert.Equal(t, 2, f.sess.Player.Pack.UsedSlots())
}

func TestNet_DragonRipsIt(t *testing.T) {
	f := newFixture(t, character.Human)
	assert.Equal(t, "You are caught in a net!", f.run("net"))
	assert.Equal(t, "You are already caught in a net.", f.run("net"))
	assert.Contains(t, f.run("floor"), "(holding you)")
	assert.Equal(t, "You can't pick up a net you are caught in.", f.run("get net"))
	assert.Equal(t, "You are held in a net.", f.run("east"))

	f.run("transform dragon")
	assert.False(t, f.sess.Player.Held)
	assert.True(t, f.msgs.Contains("The net rips apart!"))
	assert.Equal(t, "There is nothing here.", f.run("floor"))
}

func TestNet_AirDriftsThrough(t *testing.T) {
	f := newFixture(t, character.Human)
	f.run("net")
	f.run("transform air")
	assert.False(t, f.sess.Player.Held)
	assert.Contains(t, f.run("floor"), "throwing net")
	assert.NotContains(t, f.run("floor"), "holding you")
}

func TestBuff(t *testing.T) {
	f := newFixture(t, character.Human)
	assert.Contains(t, f.run("buff"), "Usage")
	assert.Contains(t, f.run("buff glow 3"), "Unknown buff")
	assert.Contains(t, f.run("buff deaths_door x"), "must be a number")
	assert.Contains(t, f.run("buff deaths_door 5"), "You are affected by")
	assert.Contains(t, f.run("buff icy_armour -5"), "must be positive")
	assert.False(t, f.sess.Player.Buffs.Has(condition.IcyArmour))

	f.run("transform lich")
	assert.Equal(t, character.FormNone, f.sess.Player.Form.Current)
	assert.True(t, f.msgs.Contains("The transformation conflicts with an enchantment already in effect."))
}

func TestForms(t *testing.T) {
	f := newFixture(t, character.Human)
	out := f.run("forms")
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, len(character.AllForms()))
	assert.Contains(t, out, "dragon")
	assert.Contains(t, out, "hp x1.6")
}

func TestHelp(t *testing.T) {
	f := newFixture(t, character.Human)
	out := f.run("help")
	assert.True(t, strings.HasPrefix(out, "Movement:"))
	assert.Contains(t, out, "transform <form> [power] (tf)")
	assert.Contains(t, out, "Debug:")
}

func TestRun_ScriptWithEcho(t *testing.T) {
	f := newFixture(t, character.Human)
	f.console.Echo = true
	script := strings.NewReader(`
# become a bat, then stop
transform bat
untransform
quit
status
`)
	require.NoError(t, f.console.Run(context.Background(), script))
	out := f.out.String()
	assert.Contains(t, out, "> transform bat\n")
	assert.Contains(t, out, "Goodbye.\n")
	assert.NotContains(t, out, "> status", "nothing runs after quit")
	assert.NotContains(t, out, "# become")
	assert.True(t, f.sess.Done())
}

func TestRun_PromptAndEOF(t *testing.T) {
	f := newFixture(t, character.Human)
	f.console.Prompt = "morph> "
	require.NoError(t, f.console.Run(context.Background(), strings.NewReader("wait\n")))
	assert.Equal(t, "morph> morph> ", f.out.String())
	assert.False(t, f.sess.Done())
}

func TestRun_Cancelled(t *testing.T) {
	f := newFixture(t, character.Human)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := f.console.Run(ctx, strings.NewReader("wait\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

type lines struct {
	queue []string
	err   error
}

func (l *lines) ReadLine() (string, error) {
	if len(l.queue) == 0 {
		return "", l.err
	}
	next := l.queue[0]
	l.queue = l.queue[1:]
	return next, nil
}

func TestServe_StopsOnSourceError(t *testing.T) {
	f := newFixture(t, character.Human)
	broken := errors.New("connection reset")
	err := f.console.Serve(context.Background(), &lines{queue: []string{"transform bat"}, err: broken})
	assert.ErrorIs(t, err, broken)
	assert.Equal(t, character.FormBat, f.sess.Player.Form.Current)
}

func TestServe_EOFIsClean(t *testing.T) {
	f := newFixture(t, character.Human)
	err := f.console.Serve(context.Background(), &lines{queue: []string{"status"}, err: io.EOF})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Tester the Human")
}
