package rename

import (
	"github.com/pstuifzand/tui-renamer/internal/diff"
)

// RemoveCharacters deletes every character of a preset class, or of a
// custom set, from the name
type RemoveCharacters struct {
	Preset             CharacterPreset `json:"presetID"`
	CharactersToRemove string          `json:"charactersToRemove"`
	IsCaseSensitive    bool            `json:"isCaseSensitive"`
}

// NewRemoveCharacters returns a RemoveCharacters that removes symbols
func NewRemoveCharacters() *RemoveCharacters {
	return &RemoveCharacters{Preset: Symbols}
}

// ID implements Operation
func (o *RemoveCharacters) ID() string { return RemoveCharactersID }

// SetOptionPreset switches to a preset class
func (o *RemoveCharacters) SetOptionPreset(preset CharacterPreset) {
	o.Preset = preset
}

// SetCustomCharacters switches to a custom set
func (o *RemoveCharacters) SetCustomCharacters(chars string, caseSensitive bool) {
	o.Preset = Custom
	o.CharactersToRemove = chars
	o.IsCaseSensitive = caseSensitive
}

// HasErrors implements Operation
func (o *RemoveCharacters) HasErrors() bool {
	return !o.Preset.valid()
}

// Rename implements Operation
func (o *RemoveCharacters) Rename(input string, _ int) diff.Result {
	if input == "" {
		return diff.Empty
	}
	return removeMatching(input, o.Preset.matcher(o.CharactersToRemove, o.IsCaseSensitive))
}

// Clone implements Operation
func (o *RemoveCharacters) Clone() Operation {
	c := *o
	return &c
}

// Equal implements Operation
func (o *RemoveCharacters) Equal(other Operation) bool {
	x, ok := other.(*RemoveCharacters)
	if !ok || x == nil {
		return false
	}
	return *o == *x
}

// Hash implements Operation
func (o *RemoveCharacters) Hash() uint64 {
	return newHasher(RemoveCharactersID).
		int(int(o.Preset)).
		str(o.CharactersToRemove).
		bool(o.IsCaseSensitive).
		sum()
}
