package motion

// Mode is the editing mode gating motion dispatch.
type Mode uint8

const (
	// Normal is the default command mode.
	Normal Mode = iota

	// Visual is character-wise selection mode.
	Visual

	// Insert is text-entry mode.
	Insert

	// Command is ex-command entry mode.
	Command

	// SearchInput is interactive pattern entry after / or ?.
	SearchInput

	// Replace is overtype mode.
	Replace
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Visual:
		return "visual"
	case Insert:
		return "insert"
	case Command:
		return "command"
	case SearchInput:
		return "search-input"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// ModeSet is a bitmask of modes a motion is allowed to fire in.
type ModeSet uint8

// Modes builds a ModeSet from individual modes.
func Modes(ms ...Mode) ModeSet {
	var set ModeSet
	for _, m := range ms {
		set |= 1 << m
	}
	return set
}

// Contains reports whether m is in the set.
func (s ModeSet) Contains(m Mode) bool {
	return s&(1<<m) != 0
}

// NormalVisual is the mode set most motions declare.
var NormalVisual = Modes(Normal, Visual)
