package proto

import "errors"

// ErrParseFail indicates a frame without usable structure: empty, too
// short, or fewer than two comma-separated fields.
var ErrParseFail = errors.New("parse failure")

// UnknownOpcodeError indicates a well-formed command with an opcode
// outside the recognized vocabulary.
type UnknownOpcodeError struct {
	Op string
}

// Error implements error.
func (e *UnknownOpcodeError) Error() string {
	return "unknown opcode " + e.Op
}

// InvalidArgsError indicates a recognized opcode with semantically
// invalid arguments.
type InvalidArgsError struct {
	Op string
}

// Error implements error.
func (e *InvalidArgsError) Error() string {
	return "invalid arguments for " + e.Op
}
