package motion

// Kind tags the motion category. Each category owns one candidate algorithm;
// the variant fields below carry only the data that algorithm needs.
type Kind uint8

const (
	// KindStep is a directional unit step: columns, lines, paragraphs, and
	// find/till character jumps. The repeat count repeats the unit.
	KindStep Kind = iota

	// KindWord is a word/WORD boundary jump driven by the wordscan engine.
	KindWord

	// KindLine applies a column rule on the current line, or count-1 lines
	// further down when an explicit count greater than one is supplied.
	KindLine

	// KindDocument jumps to a buffer edge, or to a 1-based line number when
	// an explicit count is supplied.
	KindDocument

	// KindSearch resolves through an engine match: next/previous occurrence,
	// word-under-cursor searches, and bracket matching. The repeat count is
	// not consumed.
	KindSearch

	// KindCustom delegates to a host-registered function (Lua plugins).
	KindCustom
)

// StepDir selects the unit for KindStep motions.
type StepDir uint8

const (
	StepLeft StepDir = iota
	StepRight
	StepUp
	StepDown
	StepParaForward
	StepParaBackward
	StepFindForward
	StepFindBackward
	StepTillForward
	StepTillBackward
)

// Scan selects the boundary jump for KindWord motions.
type Scan uint8

const (
	ScanNextStart Scan = iota
	ScanEnd
	ScanPrevStart
	ScanPrevEnd
)

// ColumnRule selects the landing column for KindLine motions.
type ColumnRule uint8

const (
	ColStart ColumnRule = iota
	ColFirstNonBlank
	ColEnd
)

// DocEdge selects the canonical edge for KindDocument motions without a
// count.
type DocEdge uint8

const (
	EdgeFirst DocEdge = iota
	EdgeLast
)

// SearchOp selects the engine operation for KindSearch motions.
type SearchOp uint8

const (
	// OpNext repeats the last search in its recorded direction.
	OpNext SearchOp = iota

	// OpPrev repeats the last search against its recorded direction.
	OpPrev

	// OpWordForward searches forward for the word under the cursor.
	OpWordForward

	// OpWordBackward searches backward for the word under the cursor.
	OpWordBackward

	// OpBracket jumps to the matching bracket.
	OpBracket
)

// CustomFunc computes a candidate position for a host-registered motion.
// Returning ok=false leaves the cursor unchanged.
type CustomFunc func(ctx *Context) (line, col int, ok bool)

// Motion is one dispatchable motion: identity, mode gate, category tag, and
// the variant data for that category.
type Motion struct {
	// Name is the motion identifier (e.g., "wordForward").
	Name string

	// Keys is the key sequence that triggers this motion.
	Keys string

	// Modes is the set of modes this motion fires in.
	Modes ModeSet

	// Kind selects the candidate algorithm.
	Kind Kind

	// Dir is the unit direction for KindStep.
	Dir StepDir

	// Target is the sought character for find/till steps; the dispatcher
	// fills it in from the key following f/F/t/T.
	Target rune

	// Scan is the boundary jump for KindWord.
	Scan Scan

	// Big selects the WORD token model for KindWord.
	Big bool

	// Col is the landing rule for KindLine.
	Col ColumnRule

	// Edge is the no-count target for KindDocument.
	Edge DocEdge

	// Op is the engine operation for KindSearch.
	Op SearchOp

	// Fn is the candidate function for KindCustom.
	Fn CustomFunc
}

// WithTarget returns a copy of the motion with the find/till target filled
// in.
func (m Motion) WithTarget(r rune) Motion {
	m.Target = r
	return m
}
