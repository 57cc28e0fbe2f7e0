package rename

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownOperation is returned for an identifier no operation is registered under
var ErrUnknownOperation = errors.New("unknown operation")

// Identifiers of the built-in operations
const (
	EnumerateID         = "rename.Enumerate"
	ReplaceStringID     = "rename.ReplaceString"
	RemoveCharactersID  = "rename.RemoveCharacters"
	TrimCharactersID    = "rename.TrimCharacters"
	ChangeCaseID        = "rename.ChangeCase"
	AddStringID         = "rename.AddString"
	AddStringSequenceID = "rename.AddStringSequence"
	CountByLetterID     = "rename.CountByLetter"
	ReplaceNameID       = "rename.ReplaceName"
)

var registry = map[string]func() Operation{
	EnumerateID:         func() Operation { return NewEnumerate() },
	ReplaceStringID:     func() Operation { return NewReplaceString() },
	RemoveCharactersID:  func() Operation { return NewRemoveCharacters() },
	TrimCharactersID:    func() Operation { return NewTrimCharacters() },
	ChangeCaseID:        func() Operation { return NewChangeCase() },
	AddStringID:         func() Operation { return NewAddString() },
	AddStringSequenceID: func() Operation { return NewAddStringSequence() },
	CountByLetterID:     func() Operation { return NewCountByLetter() },
	ReplaceNameID:       func() Operation { return NewReplaceName() },
}

// New returns the default configured operation registered under id
func New(id string) (Operation, error) {
	ctor, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, id)
	}
	return ctor(), nil
}

// IDs returns the registered identifiers, sorted
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Marshal encodes the configuration of op as a JSON object
func Marshal(op Operation) ([]byte, error) {
	if _, ok := registry[op.ID()]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op.ID())
	}
	data, err := json.Marshal(op)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", op.ID(), err)
	}
	return data, nil
}

// Unmarshal creates the operation registered under id and configures it
// from payload. Fields missing from the payload keep their defaults.
func Unmarshal(id string, payload []byte) (Operation, error) {
	op, err := New(id)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, op); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", id, err)
	}
	return op, nil
}

var labels = map[string]string{
	EnumerateID:         "Enumerate",
	ReplaceStringID:     "Replace String",
	RemoveCharactersID:  "Remove Characters",
	TrimCharactersID:    "Trim Characters",
	ChangeCaseID:        "Change Case",
	AddStringID:         "Prefix or Suffix",
	AddStringSequenceID: "String Sequence",
	CountByLetterID:     "Count By Letter",
	ReplaceNameID:       "Rename",
}

// Label returns a short human readable name for op
func Label(op Operation) string {
	if label, ok := labels[op.ID()]; ok {
		return label
	}
	return op.ID()
}
