package rename

import (
	"unicode"
	"unicode/utf8"

	"github.com/pstuifzand/tui-renamer/internal/diff"
)

// CharacterPreset selects the set of characters an operation removes
type CharacterPreset int

const (
	// Symbols matches Unicode punctuation and symbols (ie. !@#$%^&*_)
	Symbols CharacterPreset = iota
	// Numbers matches decimal digits
	Numbers
	// Whitespace matches spaces, tabs and other Unicode white space
	Whitespace
	// Custom matches a caller supplied set of characters
	Custom
)

// String returns the preset name
func (p CharacterPreset) String() string {
	switch p {
	case Symbols:
		return "symbols"
	case Numbers:
		return "numbers"
	case Whitespace:
		return "whitespace"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseCharacterPreset maps a preset name back to its value
func ParseCharacterPreset(name string) (CharacterPreset, bool) {
	for _, p := range []CharacterPreset{Symbols, Numbers, Whitespace, Custom} {
		if p.String() == name {
			return p, true
		}
	}
	return Custom, false
}

func (p CharacterPreset) valid() bool {
	return p >= Symbols && p <= Custom
}

// matcher returns a predicate for the preset. Custom sets compare with
// simple case folding unless caseSensitive is set. An unknown preset or an
// empty custom set matches nothing.
func (p CharacterPreset) matcher(custom string, caseSensitive bool) func(rune) bool {
	switch p {
	case Symbols:
		return func(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) }
	case Numbers:
		return unicode.IsDigit
	case Whitespace:
		return unicode.IsSpace
	case Custom:
		set := make(map[rune]struct{})
		for _, r := range custom {
			if caseSensitive {
				set[r] = struct{}{}
				continue
			}
			for f := r; ; {
				set[f] = struct{}{}
				f = unicode.SimpleFold(f)
				if f == r {
					break
				}
			}
		}
		return func(r rune) bool {
			_, ok := set[r]
			return ok
		}
	default:
		return func(rune) bool { return false }
	}
}

// removeMatching splits input into runs of kept (Equal) and matched
// (Deletion) characters. Spans are cut from input by byte offset so bytes
// that are not valid UTF-8 survive; they never match.
func removeMatching(input string, match func(rune) bool) diff.Result {
	var spans []diff.Diff
	start := 0
	startMatched := matchAt(input, 0, match)
	for i := 0; i < len(input); {
		_, size := utf8.DecodeRuneInString(input[i:])
		i += size
		if i < len(input) && matchAt(input, i, match) == startMatched {
			continue
		}
		op := diff.Equal
		if startMatched {
			op = diff.Deletion
		}
		spans = append(spans, diff.NewDiff(input[start:i], op))
		start = i
		if i < len(input) {
			startMatched = matchAt(input, i, match)
		}
	}
	return diff.NewResult(spans...)
}

// matchAt reports whether the character at byte offset i matches. An
// invalid byte is kept as is.
func matchAt(s string, i int, match func(rune) bool) bool {
	r, size := utf8.DecodeRuneInString(s[i:])
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return match(r)
}
