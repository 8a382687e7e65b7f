package app

import (
	"encoding/json"
	"io"
)

// printJSON writes v to w as a pretty-printed JSON document with
// 2-space indentation. This is the single stdout output path for all
// commands.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
