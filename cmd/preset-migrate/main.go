package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pstuifzand/tui-renamer/internal/sequence"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: preset-migrate [options] [input.txt] [output.txt]

Converts serialized rename sequences to the current format. Every input
line holds one sequence; lines in the old comma separated format are
decoded and written again. Current format sequences span several lines,
so they are read from a file holding only that one sequence (use -whole).

Options:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Arguments:
  input.txt    File to read (optional, reads stdin when not given)
  output.txt   File to write (optional, writes stdout when not given)

Examples:
  # Convert old presets, one per line
  preset-migrate old_presets.txt new_presets.txt

  # Convert one sequence from stdin
  echo "Add/Prefix or Suffix,Add/Enumerate" | preset-migrate
`)
	}

	whole := flag.Bool("whole", false, "treat the whole input as a single sequence")
	flag.Parse()

	args := flag.Args()
	in := io.Reader(os.Stdin)
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	var outputs []string
	var err error
	if *whole {
		outputs, err = migrateWhole(in)
	} else {
		outputs, err = migrateLines(in)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := strings.Join(outputs, "\n\n") + "\n"
	if len(args) > 1 {
		if err := os.WriteFile(args[1], []byte(result), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Converted %d sequences to %s\n", len(outputs), args[1])
		return
	}
	fmt.Print(result)
}

// migrateLines converts one sequence per non-empty line
func migrateLines(r io.Reader) ([]string, error) {
	var outputs []string
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out, err := migrate(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		outputs = append(outputs, out)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return outputs, nil
}

func migrateWhole(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	out, err := migrate(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, err
	}
	return []string{out}, nil
}

func migrate(data string) (string, error) {
	seq, err := sequence.Deserialize(data)
	if err != nil {
		return "", err
	}
	return seq.Serialize()
}
