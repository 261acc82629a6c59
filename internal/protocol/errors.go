package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNumber       = errors.New("could not be parsed into a number")
	ErrMissingField        = errors.New("could not find field")
	ErrUnrecognizedRequest = errors.New("could not recognize request type")
)

// Roles name the part of the request a DecodeError is about.
const (
	RoleRequestType = "request"
	RolePosition    = "position"
	RoleX           = "x"
	RoleY           = "y"
)

// DecodeError - a malformed request line. Kind is one of the Err* sentinels above.
type DecodeError struct {
	Kind  error
	Token string
	Role  string
}

func (that *DecodeError) Error() string {
	return fmt.Sprintf("Could not parse %q: %s (%s)", that.Token, that.Kind, that.Role)
}

func (that *DecodeError) Unwrap() error {
	return that.Kind
}

func invalidNumber(role, token string) *DecodeError {
	return &DecodeError{Kind: ErrInvalidNumber, Token: token, Role: role}
}

func missing(role, token string) *DecodeError {
	return &DecodeError{Kind: ErrMissingField, Token: token, Role: role}
}

func unrecognizedRequest(token string) *DecodeError {
	return &DecodeError{Kind: ErrUnrecognizedRequest, Token: token, Role: RoleRequestType}
}
