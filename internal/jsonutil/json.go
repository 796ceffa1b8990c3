// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// EncodeArray writes items as one indented JSON array. No items is "[]",
// never "null".
func EncodeArray[T any](w io.Writer, items []T) error {
	if items == nil {
		items = []T{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
