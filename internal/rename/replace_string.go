package rename

import (
	"regexp"

	"github.com/pstuifzand/tui-renamer/internal/diff"
)

// ReplaceString replaces every occurrence of SearchString. The search is
// case insensitive unless SearchIsCaseSensitive is set. With UseRegex the
// search is a regular expression and ReplacementString may refer to
// groups as $1 or ${name}.
type ReplaceString struct {
	UseRegex              bool   `json:"useRegex"`
	SearchString          string `json:"searchString"`
	SearchIsCaseSensitive bool   `json:"searchIsCaseSensitive"`
	ReplacementString     string `json:"replacementString"`
}

// NewReplaceString returns a literal, case insensitive ReplaceString with an
// empty search
func NewReplaceString() *ReplaceString {
	return &ReplaceString{}
}

// ID implements Operation
func (o *ReplaceString) ID() string { return ReplaceStringID }

// SearchPattern returns the regular expression source the search runs
// with. Literal searches are escaped.
func (o *ReplaceString) SearchPattern() string {
	if o.UseRegex {
		return o.SearchString
	}
	return regexp.QuoteMeta(o.SearchString)
}

// SearchStringIsValidRegex reports whether SearchString compiles as a
// regular expression. An empty search counts as valid.
func (o *ReplaceString) SearchStringIsValidRegex() bool {
	if o.SearchString == "" {
		return true
	}
	_, err := regexp.Compile(o.SearchString)
	return err == nil
}

// HasErrors implements Operation
func (o *ReplaceString) HasErrors() bool {
	return o.UseRegex && !o.SearchStringIsValidRegex()
}

func (o *ReplaceString) compile() (*regexp.Regexp, error) {
	pattern := o.SearchPattern()
	if !o.SearchIsCaseSensitive {
		pattern = "(?i)" + pattern
	}
	return regexp.Compile(pattern)
}

// Rename implements Operation
func (o *ReplaceString) Rename(input string, _ int) diff.Result {
	if input == "" {
		return diff.Empty
	}
	if o.SearchString == "" {
		return diff.Unchanged(input)
	}

	re, err := o.compile()
	if err != nil {
		return diff.Unchanged(input)
	}

	matches := re.FindAllStringSubmatchIndex(input, -1)
	if len(matches) == 0 {
		return diff.Unchanged(input)
	}

	var spans []diff.Diff
	next := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if next < start {
			spans = append(spans, diff.NewDiff(input[next:start], diff.Equal))
		}
		if start < end {
			spans = append(spans, diff.NewDiff(input[start:end], diff.Deletion))
		}

		replacement := o.ReplacementString
		if o.UseRegex {
			replacement = string(re.ExpandString(nil, o.ReplacementString, input, m))
		}
		if replacement != "" {
			spans = append(spans, diff.NewDiff(replacement, diff.Insertion))
		}
		next = end
	}
	if next < len(input) {
		spans = append(spans, diff.NewDiff(input[next:], diff.Equal))
	}

	return diff.NewResult(spans...)
}

// Clone implements Operation
func (o *ReplaceString) Clone() Operation {
	c := *o
	return &c
}

// Equal implements Operation
func (o *ReplaceString) Equal(other Operation) bool {
	x, ok := other.(*ReplaceString)
	if !ok || x == nil {
		return false
	}
	return *o == *x
}

// Hash implements Operation
func (o *ReplaceString) Hash() uint64 {
	return newHasher(ReplaceStringID).
		str(o.ReplacementString).
		str(o.SearchString).
		bool(o.SearchIsCaseSensitive).
		bool(o.UseRegex).
		sum()
}
