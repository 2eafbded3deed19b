// Package output serializes and renders comparison results.
package output

import (
	"encoding/json"
)

// Envelope wraps a result for JSON output.
type Envelope struct {
	Success  bool        `json:"success"`
	Error    string      `json:"error,omitempty"`
	Duration string      `json:"duration"`
	Result   interface{} `json:"result,omitempty"`
}

// ToJSON serializes an envelope, optionally pretty-printed.
func ToJSON(env Envelope, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(env, "", "  ")
	}
	return json.Marshal(env)
}
