package rename

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pstuifzand/tui-renamer/internal/diff"
)

// Casing is the target case of ChangeCase
type Casing int

const (
	Lowercase Casing = iota
	Uppercase
	// Titlecase upper cases the first letter of every word and lower cases
	// the rest
	Titlecase
)

// ChangeCase changes the case of the name, or of its first character only
type ChangeCase struct {
	Casing                   Casing `json:"casing"`
	ChangeFirstCharacterOnly bool   `json:"changeFirstCharacterOnly"`
}

// NewChangeCase returns a ChangeCase that lower cases the whole name
func NewChangeCase() *ChangeCase {
	return &ChangeCase{Casing: Lowercase}
}

// ID implements Operation
func (o *ChangeCase) ID() string { return ChangeCaseID }

// HasErrors implements Operation
func (o *ChangeCase) HasErrors() bool {
	return o.Casing < Lowercase || o.Casing > Titlecase
}

// caser builds a fresh caser on every call. A cases.Caser keeps state and
// can't be shared between goroutines.
func (o *ChangeCase) caser() (cases.Caser, bool) {
	switch o.Casing {
	case Lowercase:
		return cases.Lower(language.Und), true
	case Uppercase:
		return cases.Upper(language.Und), true
	case Titlecase:
		return cases.Title(language.Und), true
	default:
		return cases.Caser{}, false
	}
}

// Rename implements Operation
func (o *ChangeCase) Rename(input string, _ int) diff.Result {
	if input == "" {
		return diff.Empty
	}

	caser, ok := o.caser()
	if !ok {
		return diff.Unchanged(input)
	}

	var output string
	if o.ChangeFirstCharacterOnly {
		_, size := utf8.DecodeRuneInString(input)
		output = changeValid(caser, input[:size]) + input[size:]
	} else {
		output = changeValid(caser, input)
	}

	return diff.Compute(input, output)
}

// changeValid cases the valid UTF-8 runs of s and copies any other bytes
// unchanged
func changeValid(caser cases.Caser, s string) string {
	if utf8.ValidString(s) {
		return caser.String(s)
	}

	var sb strings.Builder
	for len(s) > 0 {
		n := 0
		for n < len(s) {
			r, size := utf8.DecodeRuneInString(s[n:])
			if r == utf8.RuneError && size == 1 {
				break
			}
			n += size
		}
		if n > 0 {
			sb.WriteString(caser.String(s[:n]))
			s = s[n:]
			continue
		}
		sb.WriteByte(s[0])
		s = s[1:]
	}
	return sb.String()
}

// Clone implements Operation
func (o *ChangeCase) Clone() Operation {
	c := *o
	return &c
}

// Equal implements Operation
func (o *ChangeCase) Equal(other Operation) bool {
	x, ok := other.(*ChangeCase)
	if !ok || x == nil {
		return false
	}
	return *o == *x
}

// Hash implements Operation
func (o *ChangeCase) Hash() uint64 {
	return newHasher(ChangeCaseID).
		int(int(o.Casing)).
		bool(o.ChangeFirstCharacterOnly).
		sum()
}
