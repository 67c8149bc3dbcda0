package wordscan

import "github.com/dshills/motive/internal/motion/charclass"

// tokenClass maps a rune to its token class. In WORD mode every non-space
// rune collapses into one class so punctuation never ends a token.
func tokenClass(r rune, big bool) charclass.Class {
	c := charclass.Of(r)
	if big && c == charclass.Punct {
		return charclass.Word
	}
	return c
}

// NextStart returns the column of the next token start strictly after the
// token (or whitespace run) containing col. Not found when no further token
// begins on this line.
func NextStart(line string, col int, big bool) (int, bool) {
	runes := []rune(line)
	n := len(runes)
	if n == 0 || col >= n {
		return 0, false
	}
	if col < 0 {
		col = 0
	}

	i := col
	if cls := tokenClass(runes[i], big); cls != charclass.Whitespace {
		for i < n && tokenClass(runes[i], big) == cls {
			i++
		}
	}
	for i < n && charclass.IsSpace(runes[i]) {
		i++
	}
	if i >= n {
		return 0, false
	}
	return i, true
}

// End returns the column of the current token's last character when col is
// mid-token, or the next token's last character when col already sits on a
// token end. The scan always makes forward progress.
func End(line string, col int, big bool) (int, bool) {
	runes := []rune(line)
	n := len(runes)
	if col < -1 {
		col = -1
	}

	i := col + 1
	if i >= n {
		return 0, false
	}
	for i < n && charclass.IsSpace(runes[i]) {
		i++
	}
	if i >= n {
		return 0, false
	}
	cls := tokenClass(runes[i], big)
	for i+1 < n && tokenClass(runes[i+1], big) == cls {
		i++
	}
	return i, true
}

// PrevStart returns the column of the previous token start strictly before
// col: skip whitespace backward, then back over the landing character's
// class run.
func PrevStart(line string, col int, big bool) (int, bool) {
	runes := []rune(line)
	n := len(runes)
	if n == 0 {
		return 0, false
	}

	i := col - 1
	if i > n-1 {
		i = n - 1
	}
	for i >= 0 && charclass.IsSpace(runes[i]) {
		i--
	}
	if i < 0 {
		return 0, false
	}
	cls := tokenClass(runes[i], big)
	for i > 0 && tokenClass(runes[i-1], big) == cls {
		i--
	}
	return i, true
}

// PrevEnd returns the column of the previous token's last character: back
// out of the current class run (when not on whitespace), then back over
// whitespace to the character landed on.
func PrevEnd(line string, col int, big bool) (int, bool) {
	runes := []rune(line)
	n := len(runes)
	if n == 0 {
		return 0, false
	}

	i := col
	if i > n-1 {
		i = n - 1
	}
	if i < 0 {
		return 0, false
	}
	if !charclass.IsSpace(runes[i]) {
		cls := tokenClass(runes[i], big)
		for i >= 0 && !charclass.IsSpace(runes[i]) && tokenClass(runes[i], big) == cls {
			i--
		}
	}
	for i >= 0 && charclass.IsSpace(runes[i]) {
		i--
	}
	if i < 0 {
		return 0, false
	}
	return i, true
}

// Rolling scanners. These treat the line's own first or last token as the
// answer; multi-line continuation uses them on each fresh line.

// FirstNonSpace returns the column of the first non-whitespace character.
func FirstNonSpace(line string) (int, bool) {
	for i, r := range []rune(line) {
		if !charclass.IsSpace(r) {
			return i, true
		}
	}
	return 0, false
}

// LastNonSpace returns the column of the last non-whitespace character.
func LastNonSpace(line string) (int, bool) {
	runes := []rune(line)
	for i := len(runes) - 1; i >= 0; i-- {
		if !charclass.IsSpace(runes[i]) {
			return i, true
		}
	}
	return 0, false
}

// FirstEnd returns the column of the first token's last character.
func FirstEnd(line string, big bool) (int, bool) {
	runes := []rune(line)
	n := len(runes)
	i, ok := FirstNonSpace(line)
	if !ok {
		return 0, false
	}
	cls := tokenClass(runes[i], big)
	for i+1 < n && tokenClass(runes[i+1], big) == cls {
		i++
	}
	return i, true
}

// LastStart returns the column of the last token's first character.
func LastStart(line string, big bool) (int, bool) {
	runes := []rune(line)
	i, ok := LastNonSpace(line)
	if !ok {
		return 0, false
	}
	cls := tokenClass(runes[i], big)
	for i > 0 && tokenClass(runes[i-1], big) == cls {
		i--
	}
	return i, true
}

// WordBounds returns the start and end columns of the word-class token under
// col. Fails when col is out of range or the character there is not a word
// character; punctuation does not count.
func WordBounds(line string, col int) (start, end int, ok bool) {
	runes := []rune(line)
	n := len(runes)
	if col < 0 || col >= n || !charclass.IsWord(runes[col]) {
		return 0, 0, false
	}
	start, end = col, col
	for start > 0 && charclass.IsWord(runes[start-1]) {
		start--
	}
	for end+1 < n && charclass.IsWord(runes[end+1]) {
		end++
	}
	return start, end, true
}

// WordAt returns the word-class token under col as a string.
func WordAt(line string, col int) (string, bool) {
	start, end, ok := WordBounds(line, col)
	if !ok {
		return "", false
	}
	return string([]rune(line)[start : end+1]), true
}
