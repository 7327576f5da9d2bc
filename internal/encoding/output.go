// Package encoding renders command output and provides small file helpers.
package encoding

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how listings are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted output formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat converts a flag value to a Format. An empty value is text.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatText, nil
	}

	if slices.Contains(Formats, f) {
		return f, nil
	}

	names := make([]string, len(Formats))
	for i, known := range Formats {
		names[i] = string(known)
	}

	return "", fmt.Errorf("unknown output format %q (want one of: %s)", s, strings.Join(names, ", "))
}

// Write renders value to w. Text output is delegated to text, which is
// expected to produce the human readable listing.
func Write(w io.Writer, format Format, value any, text func(io.Writer) error) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}

		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}

		return enc.Close()

	case FormatText, "":
		if text == nil {
			return nil
		}

		return text(w)
	}

	return fmt.Errorf("unknown output format %q", format)
}
