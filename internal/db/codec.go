package db

import "encoding/json"

// encodeStringList serializes a list for storage in a text column. Empty and
// nil lists are stored as NULL so legacy rows and fresh rows look the same.
func encodeStringList(list []string) *string {
	if len(list) == 0 {
		return nil
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return nil
	}
	s := string(raw)
	return &s
}

// decodeStringList parses a stored JSON list. NULL, malformed JSON, and
// non-array values all decode to an empty list so one bad column never
// breaks a page render.
func decodeStringList(raw *string) []string {
	list, _ := tryDecodeStringList(raw)
	return list
}

// tryDecodeStringList reports whether the stored value was well-formed in
// addition to the fail-soft result.
func tryDecodeStringList(raw *string) ([]string, bool) {
	if raw == nil || *raw == "" {
		return []string{}, true
	}
	var list []string
	if err := json.Unmarshal([]byte(*raw), &list); err != nil {
		return []string{}, false
	}
	if list == nil {
		return []string{}, true
	}
	return list, true
}
