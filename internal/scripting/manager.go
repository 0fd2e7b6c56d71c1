package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/morph/internal/game/dice"
)

// Manager owns one sandboxed LState holding every loaded content script.
//
// Manager is safe for concurrent use; calls into the VM are serialized.
type Manager struct {
	mu     sync.Mutex
	state  *lua.LState
	limit  int
	roller *dice.Roller
	logger *zap.Logger
}

// NewManager creates a Manager with no scripts loaded.
//
// Precondition: roller and logger must be non-nil.
func NewManager(roller *dice.Roller, logger *zap.Logger) *Manager {
	if roller == nil {
		panic("scripting.NewManager: roller must not be nil")
	}
	if logger == nil {
		panic("scripting.NewManager: logger must not be nil")
	}
	return &Manager{roller: roller, logger: logger}
}

// Load creates a fresh sandboxed VM, registers the engine.* modules, then
// executes every *.lua file in scriptDir in lexicographic order. Each file and
// each later call may run at most instLimit opcodes; 0 uses
// DefaultInstructionLimit. A successful Load replaces any previous VM.
//
// Precondition: scriptDir must be a readable directory.
// Postcondition: On error the previous VM, if any, is kept.
func (m *Manager) Load(scriptDir string, instLimit int) error {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q: %w", scriptDir, err)
	}
	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	L := NewSandboxedState()
	m.RegisterModules(L)
	for _, path := range luaFiles {
		err := WithInstructionLimit(L, instLimit, func() error { return L.DoFile(path) })
		if err != nil {
			L.Close()
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}

	m.mu.Lock()
	old := m.state
	m.state = L
	m.limit = instLimit
	m.mu.Unlock()
	if old != nil {
		old.Close()
	}
	m.logger.Debug("scripts loaded", zap.String("dir", scriptDir), zap.Int("files", len(luaFiles)))
	return nil
}

// CallGlobal calls the named Lua global function. Returns (LNil, nil) when no
// scripts are loaded or the function is not defined. Lua runtime errors,
// including an exhausted instruction budget, are logged at Warn level and
// reported as (LNil, nil).
//
// Postcondition: Returns the first return value of fn, or LNil.
func (m *Manager) CallGlobal(fn string, args ...lua.LValue) (lua.LValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		m.logger.Info("scripting: no scripts loaded", zap.String("fn", fn))
		return lua.LNil, nil
	}
	L := m.state
	f := L.GetGlobal(fn)
	if f.Type() != lua.LTFunction {
		return lua.LNil, nil
	}

	var ret lua.LValue = lua.LNil
	err := WithInstructionLimit(L, m.limit, func() error {
		if err := L.CallByParam(lua.P{Fn: f, NRet: 1, Protect: true}, args...); err != nil {
			return err
		}
		ret = L.Get(-1)
		L.Pop(1)
		return nil
	})
	if err != nil {
		m.logger.Warn("scripting: Lua runtime error", zap.String("fn", fn), zap.Error(err))
		return lua.LNil, nil
	}
	return ret, nil
}

// Close releases the VM. Later calls behave as if nothing was loaded.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != nil {
		m.state.Close()
		m.state = nil
	}
}
