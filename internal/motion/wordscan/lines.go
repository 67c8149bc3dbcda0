package wordscan

// Lines is the read surface the multi-line scanners need. The engine buffer
// satisfies it.
type Lines interface {
	// Line returns the text of a line, or false when the index is out of
	// range.
	Line(i int) (string, bool)

	// LineCount returns the number of lines.
	LineCount() int
}

// NextStartAt scans forward from (line, col) for the next token start,
// continuing onto later lines when the current line has no further token.
// Blank lines are skipped while a further token exists; with no token beyond,
// the first blank line is the landing point at column 0.
func NextStartAt(buf Lines, line, col int, big bool) (int, int, bool) {
	if text, ok := buf.Line(line); ok {
		if c, found := NextStart(text, col, big); found {
			return line, c, true
		}
	}

	blank := -1
	for l := line + 1; l < buf.LineCount(); l++ {
		text, ok := buf.Line(l)
		if !ok {
			break
		}
		if text == "" {
			if blank < 0 {
				blank = l
			}
			continue
		}
		if c, found := FirstNonSpace(text); found {
			return l, c, true
		}
	}
	if blank >= 0 {
		return blank, 0, true
	}
	return 0, 0, false
}

// EndAt scans forward from (line, col) for the next token end, continuing
// onto later lines. Blank-line handling matches NextStartAt.
func EndAt(buf Lines, line, col int, big bool) (int, int, bool) {
	if text, ok := buf.Line(line); ok {
		if c, found := End(text, col, big); found {
			return line, c, true
		}
	}

	blank := -1
	for l := line + 1; l < buf.LineCount(); l++ {
		text, ok := buf.Line(l)
		if !ok {
			break
		}
		if text == "" {
			if blank < 0 {
				blank = l
			}
			continue
		}
		if c, found := FirstEnd(text, big); found {
			return l, c, true
		}
	}
	if blank >= 0 {
		return blank, 0, true
	}
	return 0, 0, false
}

// PrevStartAt scans backward from (line, col) for the previous token start,
// continuing onto earlier lines. Blank-line handling mirrors NextStartAt.
func PrevStartAt(buf Lines, line, col int, big bool) (int, int, bool) {
	if text, ok := buf.Line(line); ok {
		if c, found := PrevStart(text, col, big); found {
			return line, c, true
		}
	}

	blank := -1
	for l := line - 1; l >= 0; l-- {
		text, ok := buf.Line(l)
		if !ok {
			break
		}
		if text == "" {
			if blank < 0 {
				blank = l
			}
			continue
		}
		if c, found := LastStart(text, big); found {
			return l, c, true
		}
	}
	if blank >= 0 {
		return blank, 0, true
	}
	return 0, 0, false
}

// PrevEndAt scans backward from (line, col) for the previous token end,
// continuing onto earlier lines.
func PrevEndAt(buf Lines, line, col int, big bool) (int, int, bool) {
	if text, ok := buf.Line(line); ok {
		if c, found := PrevEnd(text, col, big); found {
			return line, c, true
		}
	}

	blank := -1
	for l := line - 1; l >= 0; l-- {
		text, ok := buf.Line(l)
		if !ok {
			break
		}
		if text == "" {
			if blank < 0 {
				blank = l
			}
			continue
		}
		if c, found := LastNonSpace(text); found {
			return l, c, true
		}
	}
	if blank >= 0 {
		return blank, 0, true
	}
	return 0, 0, false
}
