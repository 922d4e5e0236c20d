package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrNoJSON means the response contained no JSON object at all.
var ErrNoJSON = errors.New("no JSON object found in response")

// ExtractObject returns the span between the first '{' and the last '}'.
// Oracles in JSON mode usually return a bare object, but some wrap it in
// markdown fences or a sentence of preamble.
func ExtractObject(response string) (string, error) {
	start := strings.IndexByte(response, '{')
	end := strings.LastIndexByte(response, '}')
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSON
	}
	return response[start : end+1], nil
}

// ParseObject recovers the object in an oracle response for lenient,
// field-by-field reading.
func ParseObject(response string) (gjson.Result, error) {
	jsonStr, err := ExtractObject(response)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.Valid(jsonStr) {
		return gjson.Result{}, fmt.Errorf("invalid JSON: %s", Truncate(jsonStr, 500))
	}
	return gjson.Parse(jsonStr), nil
}

// Truncate shortens s to at most n bytes for diagnostics.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// MustMarshalIndent renders v for inclusion in a prompt.
func MustMarshalIndent(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(fmt.Sprintf("marshal prompt context: %v", err))
	}
	return string(b)
}
