package repository

import "encoding/json"

// jsonb columns travel as raw bytes through the database layer; these
// helpers keep nil slices stable as empty JSON arrays/objects.

func marshalList(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return []byte("[]")
	}
	return b
}

func marshalObject(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return []byte("{}")
	}
	return b
}

func unmarshalInto(b []byte, out any) {
	if len(b) == 0 {
		return
	}
	_ = json.Unmarshal(b, out)
}
