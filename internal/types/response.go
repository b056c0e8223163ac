package types

import "encoding/json"

// RawResponse is one normalized Voyager payload: a root data object holding
// dangling references, plus the flat included list holding the entities the
// references point at.
type RawResponse struct {
	Data     json.RawMessage
	Included []Entity
}

// UnmarshalJSON decodes the included elements into typed entities.
// Elements of unmodeled kinds survive as Unknown; they never fail the
// decode.
func (r *RawResponse) UnmarshalJSON(data []byte) error {
	var aux struct {
		Data     json.RawMessage   `json:"data"`
		Included []json.RawMessage `json:"included"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Data = aux.Data
	r.Included = make([]Entity, 0, len(aux.Included))
	for _, raw := range aux.Included {
		r.Included = append(r.Included, DecodeEntity(raw))
	}
	return nil
}

// HasData reports whether the root data object is present and non-null.
func (r *RawResponse) HasData() bool {
	return r != nil && len(r.Data) > 0 && string(r.Data) != "null"
}
