package domain

import "encoding/json"

// DecodeStringList decodes a stored or extracted JSON array of strings.
// Absent or malformed values decode to an empty slice; decode failures
// are never surfaced to callers.
func DecodeStringList(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// EncodeStringList encodes a string list for storage. A nil slice
// encodes as an empty JSON array.
func EncodeStringList(list []string) string {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(b)
}
