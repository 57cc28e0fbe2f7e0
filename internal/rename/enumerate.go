package rename

import (
	"github.com/pstuifzand/tui-renamer/internal/diff"
)

// CountFormatPreset selects a built-in count format for Enumerate
type CountFormatPreset int

const (
	// CustomFormat uses Enumerate.CountFormat
	CustomFormat CountFormatPreset = iota
	// SingleDigit formats counts as 0, 1, 2...
	SingleDigit
	// LeadingZero formats counts as 00, 01, 02...
	LeadingZero
	// Underscore formats counts as _00, _01, _02...
	Underscore
)

var presetFormats = map[CountFormatPreset]string{
	SingleDigit: "0",
	LeadingZero: "00",
	Underscore:  "_00",
}

// Enumerate adds a running count to each name. The count for a name is
// StartingCount + relativeCount*Increment.
type Enumerate struct {
	StartingCount int               `json:"startingCount"`
	Increment     int               `json:"increment"`
	Prepend       bool              `json:"prepend"`
	FormatPreset  CountFormatPreset `json:"formatPreset"`
	CustomFormat  string            `json:"countFormat"`
}

// NewEnumerate returns an Enumerate counting 0, 1, 2... after the name
func NewEnumerate() *Enumerate {
	return &Enumerate{
		Increment:    1,
		CustomFormat: "0",
		FormatPreset: SingleDigit,
	}
}

// ID implements Operation
func (o *Enumerate) ID() string { return EnumerateID }

// CountFormat returns the format in use, taking the preset into account
func (o *Enumerate) CountFormat() string {
	if f, ok := presetFormats[o.FormatPreset]; ok {
		return f
	}
	return o.CustomFormat
}

// SetCountFormat switches to a custom format
func (o *Enumerate) SetCountFormat(format string) {
	o.CustomFormat = format
	o.FormatPreset = CustomFormat
}

// SetCountFormatPreset switches to a preset. The custom format is kept so
// switching back to CustomFormat restores it.
func (o *Enumerate) SetCountFormatPreset(preset CountFormatPreset) {
	o.FormatPreset = preset
}

// IsCountStringFormatValid reports whether the current format can render
// the starting count
func (o *Enumerate) IsCountStringFormatValid() bool {
	_, err := FormatCount(o.StartingCount, o.CountFormat())
	return err == nil
}

// HasErrors implements Operation. An invalid format only drops the count
// from the result, so it is not treated as an error here; callers check
// IsCountStringFormatValid to warn about it.
func (o *Enumerate) HasErrors() bool {
	return false
}

// Rename implements Operation
func (o *Enumerate) Rename(input string, relativeCount int) diff.Result {
	format := o.CountFormat()
	if format == "" {
		return insertAround(input, "", o.Prepend)
	}

	count := o.StartingCount + relativeCount*o.Increment
	text, err := FormatCount(count, format)
	if err != nil {
		return insertAround(input, "", o.Prepend)
	}
	return insertAround(input, text, o.Prepend)
}

// Clone implements Operation
func (o *Enumerate) Clone() Operation {
	c := *o
	return &c
}

// Equal implements Operation
func (o *Enumerate) Equal(other Operation) bool {
	x, ok := other.(*Enumerate)
	if !ok || x == nil {
		return false
	}
	return o.StartingCount == x.StartingCount &&
		o.Increment == x.Increment &&
		o.CountFormat() == x.CountFormat() &&
		o.FormatPreset == x.FormatPreset &&
		o.Prepend == x.Prepend
}

// Hash implements Operation
func (o *Enumerate) Hash() uint64 {
	return newHasher(EnumerateID).
		int(o.StartingCount).
		int(o.Increment).
		str(o.CountFormat()).
		int(int(o.FormatPreset)).
		bool(o.Prepend).
		sum()
}
