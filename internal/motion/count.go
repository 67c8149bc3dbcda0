package motion

import "math"

// CountState tracks repeat-count accumulation. Active distinguishes "no
// count supplied" from an explicit count of 1; document jumps need that
// distinction (G vs. 1G).
type CountState struct {
	// Value is the accumulated count value.
	Value int

	// Active indicates whether any digit has been accepted.
	Active bool
}

// Reset clears the count state.
func (c *CountState) Reset() {
	c.Value = 0
	c.Active = false
}

// AccumulateDigit adds an ASCII digit to the count and reports whether the
// digit was accepted. A leading '0' is rejected: it is the line-start motion,
// not a count.
func (c *CountState) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	digit := int(r - '0')
	if !c.Active && digit == 0 {
		return false
	}
	c.Active = true

	if c.Value > (math.MaxInt-digit)/10 {
		c.Value = math.MaxInt / 10
		return true
	}
	c.Value = c.Value*10 + digit
	return true
}

// Get returns the effective count: 1 when no count was supplied.
func (c *CountState) Get() int {
	if c.Value <= 0 {
		return 1
	}
	return c.Value
}

// Count builds an explicit count state, mostly for tests and custom callers.
func Count(n int) CountState {
	if n <= 0 {
		return CountState{}
	}
	return CountState{Value: n, Active: true}
}

// IsCountStart reports whether r could begin a count ('1'-'9').
func IsCountStart(r rune) bool {
	return r >= '1' && r <= '9'
}
