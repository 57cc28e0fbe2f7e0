package diff

// Op tells what a span does to the name it belongs to
type Op int

const (
	// Equal text is kept as is
	Equal Op = iota
	// Insertion text is added by the operation
	Insertion
	// Deletion text is removed by the operation
	Deletion
)

// String returns a short name for the op, used in debug output
func (o Op) String() string {
	switch o {
	case Equal:
		return "equal"
	case Insertion:
		return "insert"
	case Deletion:
		return "delete"
	default:
		return "unknown"
	}
}

// Diff is one span of a rename. Spans are read left to right.
type Diff struct {
	Text string
	Op   Op
}

// NewDiff creates a span
func NewDiff(text string, op Op) Diff {
	return Diff{Text: text, Op: op}
}

// LineType indicates the type of a preview line for rendering
type LineType int

const (
	LineTypeHeader LineType = iota
	LineTypeBefore
	LineTypeAfter
	LineTypeUnchanged
	LineTypeSummary
	LineTypeBlank
)

// Line is one rendered row of a rename preview. Spans holds the
// diff spans to draw for Before/After/Unchanged rows, Content is used
// for everything else.
type Line struct {
	Type    LineType
	Content string
	Spans   []Diff
	Indent  int
}
