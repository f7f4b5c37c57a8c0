// internal/jsonutil/json.go

// Package jsonutil holds the one JSON encoder configuration every prip
// JSON surface shares.
package jsonutil

import (
	"encoding/json"
	"io"
)

// EncodePretty writes v as indented JSON to w. HTML escaping is off: rule
// names routinely carry comparison characters ("CA < 4.5") and must read
// back the way they were typed.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
