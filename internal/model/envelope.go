package model

import "encoding/json"

// Envelope wraps every reply of the backend.
//
// Data is only decoded when Success is true. A failed reply keeps the zero
// value whatever the backend put in its data field.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Data    T      `json:"data"`
}

// UnmarshalJSON decodes the status fields first and only then the payload,
// so a failed reply carrying {}, "" or an error string still decodes.
func (e *Envelope[T]) UnmarshalJSON(b []byte) error {
	var wire struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Code    int             `json:"code"`
		Data    json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	var data T

	if wire.Success && len(wire.Data) > 0 {
		if err := json.Unmarshal(wire.Data, &data); err != nil {
			return err
		}
	}

	*e = Envelope[T]{
		Success: wire.Success,
		Message: wire.Message,
		Code:    wire.Code,
		Data:    data,
	}

	return nil
}

// OK reports whether the backend marked the reply as successful.
func (e Envelope[T]) OK() bool {
	return e.Success
}

// Status returns the backend's own code and message, for logging.
func (e Envelope[T]) Status() (code int, message string) {
	return e.Code, e.Message
}
