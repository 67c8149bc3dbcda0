package motion

// builtin is the static motion table. Dispatch is a map lookup over this
// slice; nothing is reflected or generated at runtime. Find/till entries are
// templates: the dispatcher clones them with WithTarget once the sought
// character arrives.
var builtin = []Motion{
	{Name: "left", Keys: "h", Modes: NormalVisual, Kind: KindStep, Dir: StepLeft},
	{Name: "down", Keys: "j", Modes: NormalVisual, Kind: KindStep, Dir: StepDown},
	{Name: "up", Keys: "k", Modes: NormalVisual, Kind: KindStep, Dir: StepUp},
	{Name: "right", Keys: "l", Modes: NormalVisual, Kind: KindStep, Dir: StepRight},

	{Name: "wordForward", Keys: "w", Modes: NormalVisual, Kind: KindWord, Scan: ScanNextStart},
	{Name: "wordBackward", Keys: "b", Modes: NormalVisual, Kind: KindWord, Scan: ScanPrevStart},
	{Name: "wordEnd", Keys: "e", Modes: NormalVisual, Kind: KindWord, Scan: ScanEnd},
	{Name: "wordEndBackward", Keys: "ge", Modes: NormalVisual, Kind: KindWord, Scan: ScanPrevEnd},
	{Name: "bigWordForward", Keys: "W", Modes: NormalVisual, Kind: KindWord, Scan: ScanNextStart, Big: true},
	{Name: "bigWordBackward", Keys: "B", Modes: NormalVisual, Kind: KindWord, Scan: ScanPrevStart, Big: true},
	{Name: "bigWordEnd", Keys: "E", Modes: NormalVisual, Kind: KindWord, Scan: ScanEnd, Big: true},
	{Name: "bigWordEndBackward", Keys: "gE", Modes: NormalVisual, Kind: KindWord, Scan: ScanPrevEnd, Big: true},

	{Name: "lineStart", Keys: "0", Modes: NormalVisual, Kind: KindLine, Col: ColStart},
	{Name: "firstNonBlank", Keys: "^", Modes: NormalVisual, Kind: KindLine, Col: ColFirstNonBlank},
	{Name: "lineEnd", Keys: "$", Modes: NormalVisual, Kind: KindLine, Col: ColEnd},

	{Name: "documentStart", Keys: "gg", Modes: NormalVisual, Kind: KindDocument, Edge: EdgeFirst},
	{Name: "documentEnd", Keys: "G", Modes: NormalVisual, Kind: KindDocument, Edge: EdgeLast},

	{Name: "paragraphForward", Keys: "}", Modes: NormalVisual, Kind: KindStep, Dir: StepParaForward},
	{Name: "paragraphBackward", Keys: "{", Modes: NormalVisual, Kind: KindStep, Dir: StepParaBackward},

	{Name: "findForward", Keys: "f", Modes: NormalVisual, Kind: KindStep, Dir: StepFindForward},
	{Name: "findBackward", Keys: "F", Modes: NormalVisual, Kind: KindStep, Dir: StepFindBackward},
	{Name: "tillForward", Keys: "t", Modes: NormalVisual, Kind: KindStep, Dir: StepTillForward},
	{Name: "tillBackward", Keys: "T", Modes: NormalVisual, Kind: KindStep, Dir: StepTillBackward},

	{Name: "matchBracket", Keys: "%", Modes: NormalVisual, Kind: KindSearch, Op: OpBracket},
	{Name: "searchNext", Keys: "n", Modes: NormalVisual, Kind: KindSearch, Op: OpNext},
	{Name: "searchPrev", Keys: "N", Modes: NormalVisual, Kind: KindSearch, Op: OpPrev},
	{Name: "searchWordForward", Keys: "*", Modes: NormalVisual, Kind: KindSearch, Op: OpWordForward},
	{Name: "searchWordBackward", Keys: "#", Modes: NormalVisual, Kind: KindSearch, Op: OpWordBackward},
}

var (
	byKeys = make(map[string]Motion, len(builtin))
	byName = make(map[string]Motion, len(builtin))
)

func init() {
	for _, m := range builtin {
		byKeys[m.Keys] = m
		byName[m.Name] = m
	}
}

// Lookup resolves a key sequence to a motion allowed in mode.
func Lookup(keys string, mode Mode) (Motion, bool) {
	m, ok := byKeys[keys]
	if !ok || !m.Modes.Contains(mode) {
		return Motion{}, false
	}
	return m, true
}

// ByName resolves a motion by its identifier regardless of mode.
func ByName(name string) (Motion, bool) {
	m, ok := byName[name]
	return m, ok
}

// IsPrefix reports whether keys is a strict prefix of some registered key
// sequence, meaning the dispatcher should wait for more input.
func IsPrefix(keys string) bool {
	if keys == "" {
		return false
	}
	for _, m := range builtin {
		if len(m.Keys) > len(keys) && m.Keys[:len(keys)] == keys {
			return true
		}
	}
	return false
}

// NeedsTarget reports whether the motion waits for one more character before
// it can run (find/till).
func (m Motion) NeedsTarget() bool {
	switch m.Dir {
	case StepFindForward, StepFindBackward, StepTillForward, StepTillBackward:
		return m.Kind == KindStep
	}
	return false
}

// All returns a copy of the builtin motion table.
func All() []Motion {
	return append([]Motion(nil), builtin...)
}
