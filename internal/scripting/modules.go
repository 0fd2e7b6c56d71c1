package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules installs the engine global into L:
//
//	engine.log.debug/info/warn/error(msg)
//	engine.dice.random2(n)        -- uniform in [0, n)
//	engine.dice.one_chance_in(n)  -- true with probability 1/n
//	engine.dice.coinflip()
//	engine.dice.roll(base, rolls, bound)
//
// Precondition: L must be from NewSandboxedState.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()
	L.SetField(engine, "log", m.logModule(L))
	L.SetField(engine, "dice", m.diceModule(L))
	L.SetGlobal("engine", engine)
}

func (m *Manager) logModule(L *lua.LState) *lua.LTable {
	levels := map[string]func(string, ...zap.Field){
		"debug": m.logger.Debug,
		"info":  m.logger.Info,
		"warn":  m.logger.Warn,
		"error": m.logger.Error,
	}
	mod := L.NewTable()
	for name, logf := range levels {
		L.SetField(mod, name, L.NewFunction(func(L *lua.LState) int {
			logf(L.CheckString(1), zap.String("source", "lua"))
			return 0
		}))
	}
	return mod
}

func (m *Manager) diceModule(L *lua.LState) *lua.LTable {
	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"random2": func(L *lua.LState) int {
			L.Push(lua.LNumber(m.roller.Random2(L.CheckInt(1))))
			return 1
		},
		"one_chance_in": func(L *lua.LState) int {
			L.Push(lua.LBool(m.roller.OneChanceIn(L.CheckInt(1))))
			return 1
		},
		"coinflip": func(L *lua.LState) int {
			L.Push(lua.LBool(m.roller.CoinFlip()))
			return 1
		},
		"roll": func(L *lua.LState) int {
			rolls := L.CheckInt(2)
			if rolls < 0 {
				L.ArgError(2, "rolls must be >= 0")
			}
			res := m.roller.RollBounded(L.CheckInt(1), rolls, L.CheckInt(3))
			L.Push(lua.LNumber(res.Total()))
			return 1
		},
	})
}
