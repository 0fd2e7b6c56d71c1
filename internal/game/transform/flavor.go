package transform

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/morph/internal/game/character"
)

// FlavorFunction is the Lua global consulted for entry messages.
const FlavorFunction = "transform_flavor"

// ScriptCaller invokes a global function in a loaded script VM.
type ScriptCaller interface {
	CallGlobal(fn string, args ...lua.LValue) (lua.LValue, error)
}

// LuaFlavor asks a script for an entry message. The script's
// transform_flavor(form, species) returns a string to replace the message or
// nil to keep the default.
type LuaFlavor struct {
	scripts ScriptCaller
}

// NewLuaFlavor returns a FlavorHook backed by scripts.
func NewLuaFlavor(scripts ScriptCaller) *LuaFlavor {
	return &LuaFlavor{scripts: scripts}
}

// EntryMessage implements FlavorHook.
func (f *LuaFlavor) EntryMessage(p *character.Player, form character.Form) (string, bool) {
	ret, err := f.scripts.CallGlobal(FlavorFunction, lua.LString(form.String()), lua.LString(string(p.Species.ID)))
	if err != nil || ret == nil {
		return "", false
	}
	s, ok := ret.(lua.LString)
	if !ok || s == "" {
		return "", false
	}
	return string(s), true
}
