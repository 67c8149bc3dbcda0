// Package charclass classifies characters for word-motion scanning.
//
// Every rune falls into exactly one of three classes: word characters
// (letters, digits, underscore), whitespace (space, tab, newline, Unicode
// spaces), and punctuation (everything else). "word" motions treat word runs
// and punctuation runs as distinct tokens; "WORD" motions only distinguish
// whitespace from everything else.
package charclass

import "unicode"

// Class is the character class used by word boundary scanning.
type Class uint8

const (
	// Whitespace covers space, tab, newline, and Unicode space characters.
	Whitespace Class = iota

	// Word covers letters, digits, and underscore.
	Word

	// Punct covers every printable character that is neither whitespace nor
	// a word character.
	Punct
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Whitespace:
		return "whitespace"
	case Word:
		return "word"
	case Punct:
		return "punct"
	default:
		return "unknown"
	}
}

// Of returns the class of a rune.
func Of(r rune) Class {
	switch {
	case unicode.IsSpace(r):
		return Whitespace
	case IsWord(r):
		return Word
	default:
		return Punct
	}
}

// IsWord reports whether r is a word character (letter, digit, underscore).
func IsWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsSpace reports whether r is whitespace.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsPunct reports whether r is punctuation in the word-motion sense.
func IsPunct(r rune) bool {
	return Of(r) == Punct
}
