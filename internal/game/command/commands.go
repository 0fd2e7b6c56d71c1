// Package command provides the console command registry, parser, handlers and
// the read-eval loop that drives a simulated session.
package command

// Categories for organizing commands.
const (
	CategoryMovement  = "movement"
	CategoryForm      = "form"
	CategoryEquipment = "equipment"
	CategoryWorld     = "world"
	CategoryTime      = "time"
	CategorySystem    = "system"
	CategoryDebug     = "debug"
)

// Handler identifiers mapping commands to handler functions.
const (
	HandlerMove        = "move"
	HandlerTransform   = "transform"
	HandlerUntransform = "untransform"
	HandlerForms       = "forms"
	HandlerWear        = "wear"
	HandlerWield       = "wield"
	HandlerRemove      = "remove"
	HandlerInventory   = "inventory"
	HandlerGet         = "get"
	HandlerDrop        = "drop"
	HandlerFloor       = "floor"
	HandlerMap         = "map"
	HandlerWait        = "wait"
	HandlerRest        = "rest"
	HandlerButcher     = "butcher"
	HandlerStatus      = "status"
	HandlerHelp        = "help"
	HandlerQuit        = "quit"
	HandlerBuff        = "buff"
	HandlerCurse       = "curse"
	HandlerNet         = "net"
)

// Command defines a console command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage shows the argument syntax.
	Usage string
	// Help is the short help text.
	Help string
	// Category groups the command in help output.
	Category string
	// Handler maps to the handler function run by a Dispatcher.
	Handler string
}

// BuiltinCommands returns all built-in commands.
func BuiltinCommands() []Command {
	return []Command{
		// Movement commands
		{Name: "north", Aliases: []string{"n"}, Help: "Move north", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "south", Aliases: []string{"s"}, Help: "Move south", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "east", Aliases: []string{"e"}, Help: "Move east", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "west", Aliases: []string{"w"}, Help: "Move west", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "northeast", Aliases: []string{"ne"}, Help: "Move northeast", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "northwest", Aliases: []string{"nw"}, Help: "Move northwest", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "southeast", Aliases: []string{"se"}, Help: "Move southeast", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "southwest", Aliases: []string{"sw"}, Help: "Move southwest", Category: CategoryMovement, Handler: HandlerMove},

		// Form commands
		{Name: "transform", Aliases: []string{"tf"}, Usage: "<form> [power]", Help: "Take on a form", Category: CategoryForm, Handler: HandlerTransform},
		{Name: "untransform", Aliases: []string{"utf"}, Help: "Return to your normal form", Category: CategoryForm, Handler: HandlerUntransform},
		{Name: "forms", Help: "List every form", Category: CategoryForm, Handler: HandlerForms},

		// Equipment commands
		{Name: "wear", Aliases: []string{"we"}, Usage: "<item>", Help: "Put on armour or jewellery from your pack", Category: CategoryEquipment, Handler: HandlerWear},
		{Name: "wield", Aliases: []string{"wi"}, Usage: "<item>", Help: "Wield a weapon from your pack", Category: CategoryEquipment, Handler: HandlerWield},
		{Name: "remove", Aliases: []string{"rm", "takeoff"}, Usage: "<slot>", Help: "Take off whatever is in a slot", Category: CategoryEquipment, Handler: HandlerRemove},
		{Name: "inventory", Aliases: []string{"inv", "i"}, Help: "Show pack contents and worn items", Category: CategoryEquipment, Handler: HandlerInventory},

		// World commands
		{Name: "get", Aliases: []string{"take", "g"}, Usage: "<item>", Help: "Pick up an item from the floor", Category: CategoryWorld, Handler: HandlerGet},
		{Name: "drop", Aliases: []string{"d"}, Usage: "<item>", Help: "Drop an item from your pack", Category: CategoryWorld, Handler: HandlerDrop},
		{Name: "floor", Aliases: []string{"look", "l"}, Help: "List the items under you", Category: CategoryWorld, Handler: HandlerFloor},
		{Name: "map", Aliases: []string{"m"}, Help: "Draw the level", Category: CategoryWorld, Handler: HandlerMap},

		// Time commands
		{Name: "wait", Aliases: []string{"."}, Usage: "[turns]", Help: "Let turns pass", Category: CategoryTime, Handler: HandlerWait},
		{Name: "rest", Aliases: []string{"r"}, Usage: "[turns]", Help: "Rest for a while", Category: CategoryTime, Handler: HandlerRest},
		{Name: "butcher", Aliases: []string{"c"}, Usage: "[turns]", Help: "Butcher a corpse", Category: CategoryTime, Handler: HandlerButcher},

		// System commands
		{Name: "status", Aliases: []string{"st", "@"}, Help: "Show your current state", Category: CategorySystem, Handler: HandlerStatus},
		{Name: "help", Aliases: []string{"?"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Help: "Leave the simulation", Category: CategorySystem, Handler: HandlerQuit},

		// Debug commands
		{Name: "buff", Usage: "<id> <turns>", Help: "Apply a timed buff", Category: CategoryDebug, Handler: HandlerBuff},
		{Name: "curse", Usage: "<item>", Help: "Curse an item in your pack", Category: CategoryDebug, Handler: HandlerCurse},
		{Name: "net", Help: "Throw a net over yourself", Category: CategoryDebug, Handler: HandlerNet},
	}
}
