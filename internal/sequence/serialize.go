package sequence

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pstuifzand/tui-renamer/internal/rename"
)

// VersionTag is the first line of every serialized sequence
const VersionTag = "[Version = 1]"

var (
	// ErrUnsupportedVersion is returned for a versioned string with a tag
	// other than VersionTag
	ErrUnsupportedVersion = errors.New("unsupported sequence version")

	// ErrMalformedEntry is returned for a line that isn't [id]payload
	ErrMalformedEntry = errors.New("malformed sequence entry")
)

// Serialized format:
//
//	[Version = 1]
//	[rename.Enumerate]{"startingCount":0,...}
//	[rename.ReplaceString]{"searchString":"foo",...}
//
// Strings written before the version tag existed are a comma separated
// list of menu paths. They carry no configuration and are mapped through
// legacyOperations. The table is closed: operations added later have no
// legacy name.
var legacyOperations = map[string]string{
	"Add/Prefix or Suffix":     rename.AddStringID,
	"Add/String Sequence":      rename.AddStringSequenceID,
	"Modify/Change Case":       rename.ChangeCaseID,
	"Add/Count By Letter":      rename.CountByLetterID,
	"Add/Enumerate":            rename.EnumerateID,
	"Delete/Remove Characters": rename.RemoveCharactersID,
	"Replace/Rename":           rename.ReplaceNameID,
	"Replace/Replace String":   rename.ReplaceStringID,
	"Delete/Trim Characters":   rename.TrimCharactersID,
}

var entryPattern = regexp.MustCompile(`^\[([^\]]*)\](.*)$`)

// Serialize encodes the sequence in the current format
func (s *Sequence[T]) Serialize() (string, error) {
	var sb strings.Builder
	sb.WriteString(VersionTag)
	for i, op := range s.ops {
		payload, err := rename.Marshal(op)
		if err != nil {
			return "", fmt.Errorf("failed to serialize operation %d: %w", i, err)
		}
		sb.WriteByte('\n')
		sb.WriteByte('[')
		sb.WriteString(op.ID())
		sb.WriteByte(']')
		sb.Write(payload)
	}
	return sb.String(), nil
}

// Deserialize decodes a sequence written by Serialize, or a legacy
// string. Legacy strings are read leniently and unknown names are
// dropped. Versioned strings are read strictly.
func Deserialize(data string) (*Pipeline, error) {
	if IsLegacy(data) {
		return deserializeLegacy(data), nil
	}
	return deserializeVersioned(data)
}

// IsLegacy reports whether data would be read with the legacy decoder
func IsLegacy(data string) bool {
	return data == "" || data[0] != '['
}

func deserializeLegacy(data string) *Pipeline {
	seq := NewPipeline()
	if data == "" {
		return seq
	}
	for _, name := range strings.Split(data, ",") {
		id, ok := legacyOperations[name]
		if !ok {
			continue
		}
		op, err := rename.New(id)
		if err != nil {
			continue
		}
		seq.Append(op)
	}
	return seq
}

func deserializeVersioned(data string) (*Pipeline, error) {
	if !strings.HasPrefix(data, VersionTag) {
		tag, _, _ := strings.Cut(data, "\n")
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, strings.TrimRight(tag, "\r"))
	}

	seq := NewPipeline()
	scanner := bufio.NewScanner(strings.NewReader(data[len(VersionTag):]))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		op, err := decodeEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		seq.Append(op)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sequence: %w", err)
	}
	return seq, nil
}

func decodeEntry(line string) (rename.Operation, error) {
	m := entryPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedEntry, line)
	}
	id, payload := m[1], m[2]
	if payload == "" {
		return nil, fmt.Errorf("%w: %s has no configuration", ErrMalformedEntry, id)
	}
	return rename.Unmarshal(id, []byte(payload))
}
