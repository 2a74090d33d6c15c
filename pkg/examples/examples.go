/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: examples.go
Description: Loading of example sets from files and readers. Supports JSON, YAML, CSV,
labelled text lines and HTML documents. The format is taken from the file extension
unless given explicitly.
*/

package examples

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kleascm/regsynth/pkg/synth"
	"gopkg.in/yaml.v3"
)

// Format names an example file format
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatTXT  Format = "txt"
	FormatHTML Format = "html"
)

var (
	// ErrUnsupportedFormat is returned for unknown formats or extensions
	ErrUnsupportedFormat = errors.New("unsupported example format")
	// ErrBadLabel is returned when a CSV or TXT entry is neither valid nor invalid
	ErrBadLabel = errors.New("unknown example label")
)

// Options tunes decoding. Selectors are only used for HTML.
type Options struct {
	ValidSelector   string
	InvalidSelector string
}

// DefaultOptions selects elements marked data-example="valid" / "invalid"
func DefaultOptions() Options {
	return Options{
		ValidSelector:   DefaultValidSelector,
		InvalidSelector: DefaultInvalidSelector,
	}
}

// FormatFromPath infers the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	case ".txt", ".lst":
		return FormatTXT, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: cannot infer format of %s", ErrUnsupportedFormat, path)
	}
}

// Load reads an example set from path
func Load(path string, format Format, opts Options) (*synth.ExampleSet, error) {
	if format == "" || format == FormatAuto {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open example file: %w", err)
	}
	defer file.Close()

	set, err := Decode(file, format, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return set, nil
}

// Decode reads an example set in the given format
func Decode(r io.Reader, format Format, opts Options) (*synth.ExampleSet, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(r)
	case FormatYAML:
		return decodeYAML(r)
	case FormatCSV:
		return decodeCSV(r)
	case FormatTXT:
		return decodeTXT(r)
	case FormatHTML:
		return DecodeHTML(r, opts.ValidSelector, opts.InvalidSelector)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func decodeJSON(r io.Reader) (*synth.ExampleSet, error) {
	var set synth.ExampleSet
	if err := json.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &set, nil
}

func decodeYAML(r io.Reader) (*synth.ExampleSet, error) {
	var set synth.ExampleSet
	if err := yaml.NewDecoder(r).Decode(&set); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &set, nil
}

// decodeCSV reads label,value rows. A leading label,value header is skipped.
func decodeCSV(r io.Reader) (*synth.ExampleSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	set := &synth.ExampleSet{}
	for i, rec := range records {
		if i == 0 && strings.EqualFold(rec[0], "label") {
			continue
		}
		if err := addLabelled(set, rec[0], rec[1]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return set, nil
}

// decodeTXT reads one example per line: "+value" is valid, "-value" is invalid.
// Blank lines and lines starting with "#" are skipped. "+" alone is the empty string.
func decodeTXT(r io.Reader) (*synth.ExampleSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read TXT: %w", err)
	}

	set := &synth.ExampleSet{}
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch line[0] {
		case '+':
			set.Valid = append(set.Valid, line[1:])
		case '-':
			set.Invalid = append(set.Invalid, line[1:])
		default:
			return nil, fmt.Errorf("line %d: %w: %q", i+1, ErrBadLabel, line)
		}
	}
	return set, nil
}

// addLabelled appends value to the side named by label
func addLabelled(set *synth.ExampleSet, label, value string) error {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "valid", "+":
		set.Valid = append(set.Valid, value)
	case "invalid", "-":
		set.Invalid = append(set.Invalid, value)
	default:
		return fmt.Errorf("%w: %q", ErrBadLabel, label)
	}
	return nil
}
