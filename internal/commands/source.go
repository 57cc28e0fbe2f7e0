package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pstuifzand/tui-renamer/internal/pipeline"
	"github.com/pstuifzand/tui-renamer/internal/rename"
	"github.com/pstuifzand/tui-renamer/internal/sequence"
)

// Sentinel errors for choosing a sequence source.
var (
	ErrNoSource          = errors.New("no sequence given, use --pipeline, --preset or --sequence")
	ErrTooManySources    = errors.New("use only one of --pipeline, --preset and --sequence")
	ErrEmptySequenceFile = errors.New("sequence file is empty")
)

// sourceFlags selects where a command reads its rename sequence from.
type sourceFlags struct {
	pipelineFile string
	presetName   string
	sequenceFile string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.pipelineFile, "pipeline", "p", "", "YAML pipeline definition")
	cmd.Flags().StringVar(&s.presetName, "preset", "", "name of a saved preset")
	cmd.Flags().StringVar(&s.sequenceFile, "sequence", "", "file holding a serialized sequence")
}

func (s *sourceFlags) load(opts *rootOptions) (*sequence.Pipeline, error) {
	set := 0
	for _, v := range []string{s.pipelineFile, s.presetName, s.sequenceFile} {
		if v != "" {
			set++
		}
	}
	switch {
	case set == 0:
		return nil, ErrNoSource
	case set > 1:
		return nil, ErrTooManySources
	}

	seq, err := s.loadOne(opts)
	if err != nil {
		return nil, err
	}

	if seq.HasErrors() {
		slog.Warn("sequence has invalid operations, they leave names unchanged")
	}
	for i, op := range seq.Operations() {
		if enum, ok := op.(*rename.Enumerate); ok && !enum.IsCountStringFormatValid() {
			slog.Warn("invalid count format, the count is left out", "step", i+1, "format", enum.CountFormat())
		}
	}
	slog.Debug("loaded sequence", "operations", seq.Len())
	return seq, nil
}

func (s *sourceFlags) loadOne(opts *rootOptions) (*sequence.Pipeline, error) {
	switch {
	case s.pipelineFile != "":
		return pipeline.LoadFile(s.pipelineFile)

	case s.presetName != "":
		store, err := opts.presets()
		if err != nil {
			return nil, err
		}
		return store.Get(s.presetName)

	default:
		return readSequenceFile(s.sequenceFile)
	}
}

func readSequenceFile(path string) (*sequence.Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequence file: %w", err)
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return nil, ErrEmptySequenceFile
	}

	seq, err := sequence.Deserialize(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return seq, nil
}
