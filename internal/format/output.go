// Package format renders CLI command output for scripting. Output is strict
// JSON; anything meant for humans goes through the plain text printers on the
// commands themselves.
package format

import (
	"io"

	"github.com/goccy/go-json"
)

// WriteJSON writes v as JSON followed by a newline.
//
// Output stays strict JSON. If a command needs to communicate how to fetch
// more data, it belongs in a `meta` field, not in trailing prose.
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
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
