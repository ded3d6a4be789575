package namelist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format selects the on-disk encoding of a namelist.
type Format string

const (
	// FormatJSON is key-sorted JSON with 4-space indentation, the form the
	// model reads.
	FormatJSON Format = "json"
	// FormatYAML is key-sorted YAML with 4-space indentation.
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q; valid: json, yaml", s)
}

// Encode writes n to w in format f.
func Encode(w io.Writer, n *Namelist, f Format) error {
	data, err := marshal(n, f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func marshal(n *Namelist, f Format) ([]byte, error) {
	var buf bytes.Buffer
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		if err := enc.Encode(n); err != nil {
			return nil, fmt.Errorf("encoding namelist as json: %w", err)
		}
		// The model's files carry no trailing newline.
		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(4)
		if err := enc.Encode(n); err != nil {
			return nil, fmt.Errorf("encoding namelist as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding namelist as yaml: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

// Load reads a namelist file written in format f.
// Uses strict parsing: unrecognized keys are rejected.
func Load(path string, f Format) (*Namelist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading namelist: %w", err)
	}
	var n Namelist
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&n); err != nil {
			return nil, fmt.Errorf("parsing namelist %s: %w", path, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&n); err != nil {
			return nil, fmt.Errorf("parsing namelist %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return &n, nil
}
