// Package output renders command results as text, JSON or plain lines.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ejolly/demo-project/internal/apperr"
)

// Format is the output format requested by the user.
type Format string

// Output format constants supported by the --output flag.
const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// TextFormattable results know how to render themselves for a human reader.
type TextFormattable interface {
	WriteText(w io.Writer) error
}

// PlainFormattable results know how to render themselves as plain text (one record per line).
// Used for piping output to other tools.
type PlainFormattable interface {
	WritePlain(w io.Writer) error
}

// ParseFormat validates s as an output format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatPlain:
		return f, nil
	default:
		return "", fmt.Errorf("%w: output format %q must be \"text\", \"json\", or \"plain\"", apperr.ErrInvalidInput, s)
	}
}

// Write dispatches a result to the appropriate formatter.
// JSON uses json.Encoder with indentation. Text requires the result to implement TextFormattable.
// Plain falls back to text when the result does not implement PlainFormattable.
func Write(w io.Writer, format Format, result any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatText:
		tf, ok := result.(TextFormattable)
		if !ok {
			return fmt.Errorf("result type %T does not support text output", result)
		}
		return tf.WriteText(w)
	case FormatPlain:
		if pf, ok := result.(PlainFormattable); ok {
			return pf.WritePlain(w)
		}
		if tf, ok := result.(TextFormattable); ok {
			return tf.WriteText(w)
		}
		return fmt.Errorf("result type %T does not support plain output", result)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}
