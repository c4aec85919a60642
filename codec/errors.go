package codec

import (
	"fmt"
)

// EncodingError wraps a failure to encode or decode one instruction with
// the codec's cursor position at the time of the call, the way a caller
// driving a batch of instructions would want to report it.
type EncodingError struct {
	Address uint32
	Message string
	Wrapped error
}

func (e *EncodingError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s at %#08x: %s: %v", e.opKind(), e.Address, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s at %#08x: %s", e.opKind(), e.Address, e.Message)
}

func (e *EncodingError) opKind() string { return "codec" }

// Unwrap exposes the underlying *arm.Error for errors.Is/errors.As.
func (e *EncodingError) Unwrap() error { return e.Wrapped }

func wrapErr(address uint32, message string, err error) error {
	if err == nil {
		return nil
	}
	return &EncodingError{Address: address, Message: message, Wrapped: err}
}
