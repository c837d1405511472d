package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownOutput is returned for an unsupported --output value.
var ErrUnknownOutput = errors.New("unknown output format")

// record is one validated input as written to JSON or YAML output.
type record struct {
	Input  string `json:"input" yaml:"input"`
	Result any    `json:"result" yaml:"result"`

	valid   bool
	summary string
}

type encoder func(w io.Writer, records []record) error

func encoderFor(format string) (encoder, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return encodeText, nil
	case "json":
		return encodeJSON, nil
	case "yaml", "yml":
		return encodeYAML, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOutput, format)
}

func encodeText(w io.Writer, records []record) error {
	for _, r := range records {
		status := "VALID"
		if !r.valid {
			status = "INVALID"
		}
		if _, err := fmt.Fprintf(w, "%-7s %s\t%s\n", status, r.Input, r.summary); err != nil {
			return err
		}
	}
	return nil
}

func encodeJSON(w io.Writer, records []record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func encodeYAML(w io.Writer, records []record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
