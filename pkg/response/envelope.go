package response

import (
	"encoding/json"
	"fmt"
)

// Decode parses an ERP envelope.
func Decode(body []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return env, nil
}

// Err returns nil on success and a *DomainError otherwise.
func (e Envelope) Err() error {
	if e.Success {
		return nil
	}
	return &DomainError{Code: e.Code, Message: e.Message}
}

// DecodeData unmarshals the data field into out. A missing data field leaves out untouched.
func (e Envelope) DecodeData(out any) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("%w: data: %v", ErrMalformed, err)
	}
	return nil
}

// Unwrap decodes body, turns success=false into a *DomainError and decodes data into out.
func Unwrap(body []byte, out any) (Envelope, error) {
	env, err := Decode(body)
	if err != nil {
		return Envelope{}, err
	}
	if err := env.Err(); err != nil {
		return env, err
	}
	if out != nil {
		if err := env.DecodeData(out); err != nil {
			return env, err
		}
	}
	return env, nil
}
