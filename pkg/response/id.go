package response

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an identifier the ERP sends either as a JSON string or a number. null decodes to "".
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*id = ""
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("%w: id %s", ErrMalformed, b)
		}
		*id = ID(n.String())
		return nil
	}
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}
