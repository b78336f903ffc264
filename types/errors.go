package types

import (
	"encoding/json"
	"fmt"
)

// Error is the typed error returned across the signing boundary. Both the code and message fields
// can be individually used to identify an error. The message MUST NOT change for a given code;
// contextual information goes into Details.
type Error struct {
	// Code identifies the error kind.
	Code int32 `json:"code"`
	// Message is stable for a given code.
	Message string `json:"message"`
	// Description allows the implementer to optionally provide generic information about the
	// kind of error. It is not part of any type assertion.
	Description *string `json:"description,omitempty"`
	// An error is retriable if the same request may succeed if submitted again.
	Retriable bool `json:"retriable"`
	// Details carries context specific to the request that caused the error.
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	bytes, _ := json.MarshalIndent(e, "", "  ")
	return string(bytes)
}

// Is reports whether target is an *Error with the same code, so that
// errors.Is(err, ErrInvalidSignature) works on wrapped copies.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrInternal = &Error{
		Code:    1, //nolint
		Message: "Internal error",
	}

	// Malformed input. A signature or public key that cannot be used is
	// reported under its own code rather than a shared one: a signature of the
	// wrong length, with a bad header or not matching the preimage is
	// ErrInvalidSignature, while a public key of the wrong length or off the
	// curve is ErrInvalidPublicKey. A well formed key that did not produce the
	// signature is ErrInvalidSignature.
	ErrInvalidAddress = &Error{
		Code:    12, //nolint
		Message: "Invalid address",
	}
	ErrInvalidSignature = &Error{
		Code:    13, //nolint
		Message: "Invalid signature",
	}
	ErrInvalidPublicKey = &Error{
		Code:    14, //nolint
		Message: "Invalid public key",
	}
	ErrInvalidPrivateKey = &Error{
		Code:    15, //nolint
		Message: "Invalid private key",
	}
	ErrInvalidValue = &Error{
		Code:    16, //nolint
		Message: "Invalid value",
	}
	ErrMissingField = &Error{
		Code:    17, //nolint
		Message: "Missing field",
	}
	ErrInvalidCallIndex = &Error{
		Code:    18, //nolint
		Message: "Invalid call index",
	}
	ErrTruncatedInput = &Error{
		Code:    19, //nolint
		Message: "Truncated input",
	}
	ErrInvalidInput = &Error{
		Code:    20, //nolint
		Message: "Invalid input",
	}

	// unsupported combination
	ErrMissingCallIndices = &Error{
		Code:    30, //nolint
		Message: "Missing call indices",
	}
	ErrNotSupported = &Error{
		Code:    31, //nolint
		Message: "Not supported",
	}
	ErrUnsupportedBlockchain = &Error{
		Code:    32, //nolint
		Message: "Unsupported blockchain",
	}
)

// WrapErr adds details to the types.Error provided. We use a function
// to do this so that we don't accidentally overwrite the standard
// errors.
func WrapErr(rErr *Error, err error) *Error {
	newErr := &Error{
		Code:        rErr.Code,
		Message:     rErr.Message,
		Description: rErr.Description,
		Retriable:   rErr.Retriable,
	}
	if err != nil {
		newErr.Details = map[string]interface{}{
			"context": err.Error(),
		}
	}

	return newErr
}

// NewErr is WrapErr with a formatted context message.
func NewErr(rErr *Error, format string, args ...any) *Error {
	return WrapErr(rErr, fmt.Errorf(format, args...))
}
