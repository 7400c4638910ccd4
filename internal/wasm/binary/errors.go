// Package binary implements the Wasm binary module format codec: encoding
// a wasm.Module to bytes and decoding bytes back to a wasm.Module.
package binary

import "fmt"

// EmitError is returned by Encode and the component emit functions it calls.
type EmitError struct {
	// Component names the module component being emitted when the failure
	// occurred, e.g. "element segment 3" or "function type 0".
	Component string
	Err       error
}

func (e *EmitError) Error() string {
	if e.Component == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("encode %s: %v", e.Component, e.Err)
}

func (e *EmitError) Unwrap() error { return e.Err }

func emitErr(component string, err error) error {
	if err == nil {
		return nil
	}
	return &EmitError{Component: component, Err: err}
}

// ParseError is returned by Decode and the component parse functions it
// calls.
type ParseError struct {
	// Offset is a byte offset into the input, measured from the start of the
	// module (including the preamble). For a failure inside a section it is
	// the offset at which that section starts; for the checks made after the
	// last section it is the end of the input.
	Offset int64
	// Component names the module component being parsed, e.g. "section
	// id" or "element segment 3".
	Component string
	Err       error
}

func (e *ParseError) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("offset %d: parse %s: %v", e.Offset, e.Component, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErr(offset int64, component string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Offset: offset, Component: component, Err: err}
}

// ErrInvalidMagic is returned when the input does not begin with the
// `\0asm` preamble.
var ErrInvalidMagic = fmt.Errorf("invalid magic number")

// ErrInvalidVersion is returned when the input's version field is not the
// one this codec understands (1).
var ErrInvalidVersion = fmt.Errorf("invalid version")

// ErrSectionOutOfOrder is returned when two non-custom sections appear out
// of their fixed relative order.
var ErrSectionOutOfOrder = fmt.Errorf("section out of order")

// ErrTrailingBytes is returned when bytes remain in a section's payload
// after its content has been parsed.
var ErrTrailingBytes = fmt.Errorf("trailing bytes at end of section")

// ErrFunctionCodeMismatch is returned when the function and code sections
// declare a different number of entries.
var ErrFunctionCodeMismatch = fmt.Errorf("function and code section entry counts do not match")

// ErrDataCountMismatch is returned when a data-count section is present and
// disagrees with the data section's actual entry count.
var ErrDataCountMismatch = fmt.Errorf("data count section does not match data section")

// ErrUnexpectedEnd is returned when an expression's instruction stream
// reaches the input's end without a terminating 0x0B byte.
var ErrUnexpectedEnd = fmt.Errorf("unexpected end of input, expected 0x0B")

// ErrInvalidUTF8 is returned when a name's bytes are not valid UTF-8.
var ErrInvalidUTF8 = fmt.Errorf("invalid UTF-8 in name")

// ErrUnknownOpcode is returned when an instruction byte (or extended
// opcode) is not recognized.
type ErrUnknownOpcode struct {
	Byte uint32
}

func (e *ErrUnknownOpcode) Error() string {
	return fmt.Sprintf("unknown opcode 0x%x", e.Byte)
}
