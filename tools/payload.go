package tools

import "encoding/json"

// Payload marshals v through JSON to keep tool outputs as uniform
// map[string]any values.
func Payload(v any) map[string]any {
	b, _ := json.Marshal(v)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}
