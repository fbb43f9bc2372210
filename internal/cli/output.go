package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.yaml.in/yaml/v3"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	bold   = color.New(color.Bold)
)

// checkOutputFormat rejects an unknown --output value. Commands call it
// before doing any work so a typo never follows a side effect.
func checkOutputFormat(format string) error {
	switch format {
	case "", outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)", format, outputText, outputJSON, outputYAML)
	}
}

// writeOutput renders v as JSON or YAML, or calls text for the text format.
func writeOutput(w io.Writer, format string, v any, text func(io.Writer)) error {
	if err := checkOutputFormat(format); err != nil {
		return err
	}
	switch format {
	case "", outputText:
		text(w)
		return nil
	case outputJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON output: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshaling YAML output: %w", err)
		}
		return enc.Close()
	}
	return nil
}
