package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownFormat is returned for an output format other than json, edn or text.
var ErrUnknownFormat = errors.New("unknown format")

// Liner is implemented by values with a plain-text rendering, one entry per line.
type Liner interface {
	Lines() []string
}

// Write writes v as json (default), edn or text.
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	case "text":
		return WriteText(w, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func WriteText(w io.Writer, v any) error {
	l, ok := v.(Liner)
	if !ok {
		_, err := fmt.Fprintln(w, v)
		return err
	}
	for _, line := range l.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
