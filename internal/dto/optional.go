package dto

import (
	"bytes"
	"encoding/json"
)

// OptionalString tracks presence for PATCH bodies:
//   - Present=false: field absent (leave unchanged)
//   - Present=true, Value=nil: JSON null (clear)
//   - Present=true, Value!=nil: new value
type OptionalString struct {
	Present bool
	Value   *string
}

// UnmarshalJSON is only called when the field is present.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true

	if string(bytes.TrimSpace(data)) == "null" {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}
