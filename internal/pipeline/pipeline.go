// Package pipeline reads rename sequences written by hand as YAML.
//
//	operations:
//	  - type: replace_string
//	    search: "-"
//	    replacement: "_"
//	  - type: enumerate
//	    format: "00"
//	    starting_count: 1
package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/pstuifzand/tui-renamer/internal/rename"
	"github.com/pstuifzand/tui-renamer/internal/sequence"
)

// ErrUnknownType is returned for an entry whose type isn't a known
// operation
var ErrUnknownType = errors.New("unknown operation type")

type document struct {
	Operations []yaml.Node `yaml:"operations"`
}

type header struct {
	Type string `yaml:"type"`
}

// builder decodes one entry and returns the operation it describes
type builder func(node *yaml.Node) (rename.Operation, error)

var builders = map[string]builder{
	"enumerate":           buildEnumerate,
	"replace_string":      buildReplaceString,
	"remove_characters":   buildRemoveCharacters,
	"trim_characters":     buildTrimCharacters,
	"change_case":         buildChangeCase,
	"add_string":          buildAddString,
	"add_string_sequence": buildAddStringSequence,
	"count_by_letter":     buildCountByLetter,
	"replace_name":        buildReplaceName,
}

// Types returns the accepted values of the type field, sorted
func Types() []string {
	types := make([]string, 0, len(builders))
	for t := range builders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// LoadFile reads a pipeline definition from path
func LoadFile(path string) (*sequence.Pipeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pipeline file: %w", err)
	}
	defer f.Close()

	seq, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// Load reads a pipeline definition. Unknown keys are errors, both at the
// top level and inside an entry.
func Load(r io.Reader) (*sequence.Pipeline, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return sequence.NewPipeline(), nil
		}
		return nil, fmt.Errorf("failed to parse pipeline: %w", err)
	}

	seq := sequence.NewPipeline()
	for i := range doc.Operations {
		node := &doc.Operations[i]

		var h header
		if err := node.Decode(&h); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i+1, err)
		}
		build, ok := builders[h.Type]
		if !ok {
			return nil, fmt.Errorf("operation %d (line %d): %w: %q", i+1, node.Line, ErrUnknownType, h.Type)
		}

		op, err := build(node)
		if err != nil {
			return nil, fmt.Errorf("operation %d (line %d, %s): %w", i+1, node.Line, h.Type, err)
		}
		seq.Append(op)
	}
	return seq, nil
}

// decodeStrict decodes node into v, rejecting keys v has no field for.
// yaml.Node.Decode has no strict mode, so the node is encoded again and
// run through a strict decoder.
func decodeStrict(node *yaml.Node, v any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}

func parsePreset(name string, fallback rename.CharacterPreset) (rename.CharacterPreset, error) {
	if name == "" {
		return fallback, nil
	}
	p, ok := rename.ParseCharacterPreset(name)
	if !ok {
		return 0, fmt.Errorf("unknown character preset %q", name)
	}
	return p, nil
}

func buildEnumerate(node *yaml.Node) (rename.Operation, error) {
	var def struct {
		Type          string `yaml:"type"`
		StartingCount int    `yaml:"starting_count"`
		Increment     *int   `yaml:"increment"`
		Prepend       bool   `yaml:"prepend"`
		Format        string `yaml:"format"`
		Preset        string `yaml:"preset"`
	}
	if err := decodeStrict(node, &def); err != nil {
		return nil, err
	}

	op := rename.NewEnumerate()
	op.StartingCount = def.StartingCount
	op.Prepend = def.Prepend
	if def.Increment != nil {
		op.Increment = *def.Increment
	}

	switch {
	case def.Format != "" && def.Preset != "":
		return nil, fmt.Errorf("format and preset can't both be set")
	case def.Format != "":
		if !rename.ValidCountFormat(def.Format) {
			return nil, fmt.Errorf("%w: %q", rename.ErrInvalidCountFormat, def.Format)
		}
		op.SetCountFormat(def.Format)
	case def.Preset != "":
		presets := map[string]rename.CountFormatPreset{
			"single_digit": rename.SingleDigit,
			"leading_zero": rename.LeadingZero,
			"underscore":   rename.Underscore,
		}
		p, ok := presets[def.Preset]
		if !ok {
			return nil, fmt.Errorf("unknown count preset %q", def.Preset)
		}
		op.SetCountFormatPreset(p)
	}
	return op, nil
}

func buildReplaceString(node *yaml.Node) (rename.Operation, error) {
	var def struct {
		Type          string `yaml:"type"`
		Search        string `yaml:"search"`
		Replacement   string `yaml:"replacement"`
		Regex         bool   `yaml:"regex"`
		CaseSensitive bool   `yaml:"case_sensitive"`
	}
	if err := decodeStrict(node, &def); err != nil {
		return nil, err
	}

	op := rename.NewReplaceString()
	op.SearchString = def.Search
	op.ReplacementString = def.Replacement
	op.UseRegex = def.Regex
	op.SearchIsCaseSensitive = def.CaseSensitive
	if op.HasErrors() {
		return nil, fmt.Errorf("invalid regular expression %q", def.Search)
	}
	return op, nil
}

func buildRemoveCharacters(node *yaml.Node) (rename.Operation, error) {
	var def struct {
		Type          string `yaml:"type"`
		Preset        string `yaml:"preset"`
		Characters    string `yaml:"characters"`
		CaseSensitive bool   `yaml:"case_sensitive"`
	}
	if err := decodeStrict(node, &def); err != nil {
		return nil, err
	}

	fallback := rename.Symbols
	if def.Characters != "" {
		fallback = rename.Custom
	}
	preset, err := parsePreset(def.Preset, fallback)
	if err != nil {
		return nil, err
	}

	op := rename.NewRemoveCharacters()
	op.Preset = preset
	op.CharactersToRemove = def.Characters
	op.IsCaseSensitive = def.CaseSensitive
	return op, nil
}

func buildTrimCharacters(node *yaml.Node) (rename.Operation, error) {
	var def struct {
		Type          string `yaml:"type"`
		Front         int    `yaml:"front"`
		Back          int    `yaml:"back"`
		Preset        string `yaml:"preset"`
		Characters    string `yaml:"characters"`
		CaseSensitive bool   `yaml:"case_sensitive"`
	}
	if err := decodeStrict(node, &def); err != nil {
		return nil, err
	}
	if def.Front < 0 || def.Back < 0 {
		return nil, fmt.Errorf("front and back must not be negative")
	}

	preset, err := parsePreset(def.Preset, rename.Custom)
	if err != nil {
		return nil, err
	}

	op := rename.NewTrimCharacters()
	op.NumFrontDeleteChars = def.Front
	op.NumBackDeleteChars = def.Back
	op.Preset = preset
	op.CharactersToTrim = def.Characters
	op.IsCaseSensitive = def.CaseSensitive
	return op, nil
}

func buildChangeCase(node *yaml.Node) (rename.Operation, error) {
	var def struct {
		Type               string `yaml:"type"`
		Casing             string `yaml:"casing"`
		FirstCharacterOnly bool   `yaml:"first_character_only"`
	}
	if err := decodeStrict(node, &def); err != nil {
		return nil, err
	}

	op := rename.NewChangeCase()
	switch def.Casing {
	case "", "lower":
		op.Casing = rename.Lowercase
	case "upper":
		op.Casing = rename.Uppercase
	case "title":
		op.Casing = rename.Titlecase
	default:
		return nil, fmt.Errorf("unknown casing %q", def.Casing)
	}
	op.ChangeFirstCharacterOnly = def.FirstCharacterOnly
	return op, nil
}

func buildAddString(node *yaml.Node) (rename.Operation, error) {
	var def struct {
		Type   string `yaml:"type"`
		Prefix string `yaml:"prefix"`
		Suffix string `yaml:"suffix"`
	}
	if err := decodeStrict(node, &def); err != nil {
		return nil, err
	}

	op := rename.NewAddString()
	op.Prefix = def.Prefix
	op.Suffix = def.Suffix
	return op, nil
}

func buildAddStringSequence(node *yaml.Node) (rename.Operation, error) {
	var def struct {
		Type    string   `yaml:"type"`
		Values  []string `yaml:"values"`
		Prepend bool     `yaml:"prepend"`
	}
	if err := decodeStrict(node, &def); err != nil {
		return nil, err
	}

	op := rename.NewAddStringSequence()
	if def.Values != nil {
		op.StringSequence = def.Values
	}
	op.Prepend = def.Prepend
	return op, nil
}

func buildCountByLetter(node *yaml.Node) (rename.Operation, error) {
	var def struct {
		Type          string   `yaml:"type"`
		Sequence      []string `yaml:"sequence"`
		StartingCount int      `yaml:"starting_count"`
		Increment     *int     `yaml:"increment"`
		Prepend       bool     `yaml:"prepend"`
		NoCarryOver   bool     `yaml:"no_carry_over"`
	}
	if err := decodeStrict(node, &def); err != nil {
		return nil, err
	}

	op := rename.NewCountByLetter()
	if def.Sequence != nil {
		op.CountSequence = def.Sequence
	}
	op.StartingCount = def.StartingCount
	if def.Increment != nil {
		op.Increment = *def.Increment
	}
	op.Prepend = def.Prepend
	op.DoNotCarryOver = def.NoCarryOver
	if op.HasErrors() {
		return nil, fmt.Errorf("letter sequence must not be empty or contain empty entries")
	}
	return op, nil
}

func buildReplaceName(node *yaml.Node) (rename.Operation, error) {
	var def struct {
		Type string `yaml:"type"`
		Name string `yaml:"name"`
	}
	if err := decodeStrict(node, &def); err != nil {
		return nil, err
	}

	op := rename.NewReplaceName()
	op.NewName = def.Name
	return op, nil
}
