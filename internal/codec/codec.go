package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"studentcard/internal/student"
)

// Format names an interchange format.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat reports an unsupported format name.
var ErrUnknownFormat = errors.New("unknown format")

// Formats lists the supported formats, canonical first.
func Formats() []Format {
	return []Format{FormatJSON, FormatTOML, FormatYAML}
}

// FormatNames lists the supported formats as "json, toml, yaml".
func FormatNames() string {
	formats := Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ParseFormat resolves a user-supplied format name. Empty selects JSON.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, value, FormatNames())
	}
}

// Encode returns the canonical JSON text of d.
func Encode(d student.Data) (string, error) {
	b, err := Marshal(d, FormatJSON)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses canonical JSON text into plain data. Keys other than the data
// fields, such as greet, are ignored.
func Decode(text string) (student.Data, error) {
	return Unmarshal([]byte(text), FormatJSON)
}

// Marshal encodes d in the given format.
func Marshal(d student.Data, format Format) ([]byte, error) {
	d = normalize(d)
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(d); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	case FormatTOML:
		b, err := toml.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return b, nil
	case FormatYAML:
		b, err := yaml.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, string(format))
	}
}

// Unmarshal decodes data in the given format.
func Unmarshal(data []byte, format Format) (student.Data, error) {
	var d student.Data
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &d); err != nil {
			return student.Data{}, fmt.Errorf("decode json: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &d); err != nil {
			return student.Data{}, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return student.Data{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return student.Data{}, fmt.Errorf("%w %q", ErrUnknownFormat, string(format))
	}
	return normalize(d), nil
}

// normalize copies d and replaces nil skills with an empty list so every
// format renders an array.
func normalize(d student.Data) student.Data {
	d = d.Clone()
	if d.Skills == nil {
		d.Skills = []string{}
	}
	return d
}
