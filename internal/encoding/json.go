// Package encoding provides utilities for encoding and decoding data.
package encoding

import (
	"encoding/json"
	"fmt"
	"io"
)

// maxBodySize caps how much of a reply DecodeJSON will read.
const maxBodySize = 10 << 20

// DecodeJSON reads a single JSON document from r into out.
// Reads stop after 10 MiB.
func DecodeJSON(r io.Reader, out any) error {
	if err := json.NewDecoder(io.LimitReader(r, maxBodySize)).Decode(out); err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}

	return nil
}

// WriteJSON writes value to w as indented JSON followed by a newline.
func WriteJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
