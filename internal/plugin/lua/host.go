package lua

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/motive/internal/motion"
)

// Host owns the Lua state and the motions scripts have registered.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes every
// entry into Lua, including motion execution.
type Host struct {
	mu     sync.Mutex
	L      *lua.LState
	byName map[string]motion.Motion
	order  []string
	closed bool
}

// NewHost creates a sandboxed host with the motive module installed.
func NewHost() (*Host, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	h := &Host{
		L:      L,
		byName: make(map[string]motion.Motion),
	}

	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"register": h.luaRegister,
	})
	L.SetGlobal("motive", mod)

	return h, nil
}

// openSafeLibraries opens only the side-effect-free standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// LoadFile executes a motion script from disk.
func (h *Host) LoadFile(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHostClosed
	}
	return h.doWithRecovery(func() error {
		return h.L.DoFile(path)
	})
}

// LoadString executes a motion script from a string.
func (h *Host) LoadString(code string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHostClosed
	}
	return h.doWithRecovery(func() error {
		return h.L.DoString(code)
	})
}

func (h *Host) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Motion returns a registered motion by name.
func (h *Host) Motion(name string) (motion.Motion, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	m, ok := h.byName[name]
	return m, ok
}

// Motions returns all registered motions in registration order.
func (h *Host) Motions() []motion.Motion {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]motion.Motion, 0, len(h.order))
	for _, name := range h.order {
		out = append(out, h.byName[name])
	}
	return out
}

// Close releases the Lua state. Motions obtained earlier become inert: their
// move functions report no movement once the host is closed.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.L.Close()
	h.closed = true
	return nil
}

// luaRegister implements motive.register(def).
func (h *Host) luaRegister(L *lua.LState) int {
	def := L.CheckTable(1)

	name, ok := tableString(def, "name")
	if !ok || name == "" {
		L.RaiseError("register: name is required")
		return 0
	}
	if _, exists := h.byName[name]; exists {
		L.RaiseError("register: %s", ErrDuplicateMotion.Error())
		return 0
	}

	fn, ok := tableFunc(def, "move")
	if !ok {
		L.RaiseError("register: move function is required")
		return 0
	}

	keys, _ := tableString(def, "keys")
	modes, err := tableModes(def)
	if err != nil {
		L.RaiseError("register: %s", err.Error())
		return 0
	}

	m := motion.Motion{
		Name:  name,
		Keys:  keys,
		Modes: modes,
		Kind:  motion.KindCustom,
		Fn:    h.moveFunc(fn),
	}
	h.byName[name] = m
	h.order = append(h.order, name)
	return 0
}

// moveFunc wraps a Lua move function as a motion candidate function.
func (h *Host) moveFunc(fn *lua.LFunction) motion.CustomFunc {
	return func(ctx *motion.Context) (int, int, bool) {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.closed {
			return 0, 0, false
		}

		arg := h.contextTable(ctx)
		top := h.L.GetTop()
		h.L.Push(fn)
		h.L.Push(arg)

		var callErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callErr = fmt.Errorf("lua panic: %v", r)
				}
			}()
			callErr = h.L.PCall(1, lua.MultRet, nil)
		}()
		if callErr != nil {
			h.L.SetTop(top)
			return 0, 0, false
		}

		nret := h.L.GetTop() - top
		defer h.L.SetTop(top)
		if nret < 2 {
			return 0, 0, false
		}
		lline, lok := h.L.Get(top + 1).(lua.LNumber)
		lcol, cok := h.L.Get(top + 2).(lua.LNumber)
		if !lok || !cok {
			return 0, 0, false
		}
		return int(lline), int(lcol), true
	}
}

// contextTable builds the snapshot table handed to a move function.
func (h *Host) contextTable(ctx *motion.Context) *lua.LTable {
	t := h.L.NewTable()
	t.RawSetString("line", lua.LNumber(ctx.Cursor.Line))
	t.RawSetString("col", lua.LNumber(ctx.Cursor.Col))
	t.RawSetString("count", lua.LNumber(ctx.Count.Get()))
	t.RawSetString("line_count", lua.LNumber(ctx.Buffer.LineCount()))

	buf := ctx.Buffer
	t.RawSetString("line_text", h.L.NewFunction(func(L *lua.LState) int {
		i := L.CheckInt(1)
		text, ok := buf.Line(i)
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LString(text))
		return 1
	}))
	return t
}

// tableString reads a string field from a definition table.
func tableString(t *lua.LTable, key string) (string, bool) {
	if s, ok := t.RawGetString(key).(lua.LString); ok {
		return string(s), true
	}
	return "", false
}

// tableFunc reads a function field from a definition table.
func tableFunc(t *lua.LTable, key string) (*lua.LFunction, bool) {
	if f, ok := t.RawGetString(key).(*lua.LFunction); ok {
		return f, true
	}
	return nil, false
}

// tableModes reads the modes list; absent means normal and visual.
func tableModes(t *lua.LTable) (motion.ModeSet, error) {
	v := t.RawGetString("modes")
	if v == lua.LNil {
		return motion.NormalVisual, nil
	}
	list, ok := v.(*lua.LTable)
	if !ok {
		return 0, fmt.Errorf("modes must be a list of mode names")
	}

	var set motion.ModeSet
	var err error
	list.ForEach(func(_, item lua.LValue) {
		s, ok := item.(lua.LString)
		if !ok {
			err = fmt.Errorf("modes must be a list of mode names")
			return
		}
		switch string(s) {
		case "normal":
			set |= motion.Modes(motion.Normal)
		case "visual":
			set |= motion.Modes(motion.Visual)
		default:
			err = fmt.Errorf("unknown mode %q", string(s))
		}
	})
	if err != nil {
		return 0, err
	}
	if set == 0 {
		return 0, fmt.Errorf("modes list is empty")
	}
	return set, nil
}
