// SPDX-License-Identifier: MIT

package levelio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gradual/graded"
	"github.com/katalvlaran/gradual/levels"
)

var (
	// ErrNotFound is returned by Load for a missing input file.
	ErrNotFound = fmt.Errorf("%w: input file not found", levels.ErrValidation)

	// ErrEmptyFile is returned when no non-blank line is present.
	ErrEmptyFile = fmt.Errorf("%w: input file is empty", levels.ErrValidation)

	// ErrBadLevel is returned when the first line does not parse as floats.
	ErrBadLevel = fmt.Errorf("%w: levels must be space-separated floats (e.g., '1 0.8')", levels.ErrValidation)

	// ErrInputCount is returned when the input count differs from the level count.
	ErrInputCount = fmt.Errorf("%w: input count mismatch", levels.ErrValidation)

	// ErrBadValue is returned by ReadValues for inputs that are not numbers.
	ErrBadValue = fmt.Errorf("%w: inputs must be numbers", levels.ErrValidation)
)

// Read parses a level/input file from r.
func Read(r io.Reader) (levels.Set, []string, error) {
	lines, err := nonBlankLines(r)
	if err != nil {
		return levels.Set{}, nil, fmt.Errorf("levelio: Read: %w", err)
	}
	if len(lines) == 0 {
		return levels.Set{}, nil, fmt.Errorf("levelio: Read: %w", ErrEmptyFile)
	}

	fields := strings.Fields(lines[0])
	lv := make([]float64, len(fields))
	for i, f := range fields {
		if lv[i], err = strconv.ParseFloat(f, 64); err != nil {
			return levels.Set{}, nil, fmt.Errorf("levelio: Read: %w: %q", ErrBadLevel, f)
		}
	}
	set, err := levels.New(lv...)
	if err != nil {
		return levels.Set{}, nil, fmt.Errorf("levelio: Read: %w", err)
	}

	inputs := lines[1:]
	if len(inputs) != set.Len() {
		return levels.Set{}, nil, fmt.Errorf("levelio: Read: %w: input file must have %d input lines, got %d",
			ErrInputCount, set.Len(), len(inputs))
	}

	return set, inputs, nil
}

// Load opens path and parses it with Read.
func Load(path string) (levels.Set, []string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return levels.Set{}, nil, fmt.Errorf("levelio: Load: %w: %s", ErrNotFound, path)
	}
	if err != nil {
		return levels.Set{}, nil, fmt.Errorf("levelio: Load: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// LoadValue loads path as a graded string value.
func LoadValue(path string) (*graded.Value[string], error) {
	set, inputs, err := Load(path)
	if err != nil {
		return nil, err
	}

	return graded.New(set.Values(), inputs)
}

// ReadValues is Read with every input parsed as a float64.
func ReadValues(r io.Reader) (*graded.Value[float64], error) {
	set, inputs, err := Read(r)
	if err != nil {
		return nil, err
	}

	return parseValues(set, inputs)
}

// LoadValues is Load with every input parsed as a float64.
func LoadValues(path string) (*graded.Value[float64], error) {
	set, inputs, err := Load(path)
	if err != nil {
		return nil, err
	}

	return parseValues(set, inputs)
}

func parseValues(set levels.Set, inputs []string) (*graded.Value[float64], error) {
	vals := make([]float64, len(inputs))
	for i, in := range inputs {
		v, err := strconv.ParseFloat(in, 64)
		if err != nil {
			return nil, fmt.Errorf("levelio: %w: level %s: %q", ErrBadValue, levels.Format(set.At(i)), in)
		}
		vals[i] = v
	}

	return graded.New(set.Values(), vals)
}

// Write renders set and inputs in the format Read accepts.
func Write(w io.Writer, set levels.Set, inputs []string) error {
	if len(inputs) != set.Len() {
		return fmt.Errorf("levelio: Write: %w: input file must have %d input lines, got %d",
			ErrInputCount, set.Len(), len(inputs))
	}
	bw := bufio.NewWriter(w)
	lv := make([]string, set.Len())
	for i := range lv {
		lv[i] = strconv.FormatFloat(set.At(i), 'g', -1, 64)
	}
	fmt.Fprintln(bw, strings.Join(lv, " "))
	for _, in := range inputs {
		if strings.ContainsAny(in, "\r\n") || strings.TrimSpace(in) != in || in == "" {
			return fmt.Errorf("levelio: Write: %w: input %q does not fit on one trimmed line", levels.ErrValidation, in)
		}
		fmt.Fprintln(bw, in)
	}

	return bw.Flush()
}

func nonBlankLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}

	return out, sc.Err()
}
