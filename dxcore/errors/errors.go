/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package errors provides the error types shared by every dxenigma package.
//
// The machine has exactly one failure kind: an argument that falls outside
// the 26-letter alphabet (or an enum-like value outside its set of
// constants). Every error produced by dxenigma for such input matches
// ErrInvalidArgument via errors.Is, regardless of which concrete carrier
// type reports it.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing text into a letter or an enum-like type fails
//     (for example, a rotor type "VI" or a letter "1").
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails.
//
//   - ValidationError
//     Returned by Validate methods to report constraint violations.
//
//   - ArgumentError
//     Returned by the public machine operations (New, SetPlugs, EncryptChar,
//     EncryptString) to name the operation and argument that was rejected.
//
// # Usage
//
//	out, err := m.EncryptChar('1')
//	if errors.Is(err, dxerrors.ErrInvalidArgument) {
//	    // reject the input
//	}
package errors

import (
	stderrors "errors"
	"strconv"
)

// ErrInvalidArgument is the sentinel for the invalid-argument failure kind.
//
// ParseError, ValidationError and ArgumentError all unwrap to it.
var ErrInvalidArgument = stderrors.New("invalid argument")

// ParseError is returned when parsing a string into a strongly typed value
// fails.
//
// Type identifies the logical type being parsed (for example, "Letter",
// "RotorType"), and Value contains the exact text that could not be
// interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Letter").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxenigma: invalid {Type} value: {Value}"
//
// Value is quoted so that control characters and empty input stay visible.
func (e *ParseError) Error() string {
	return "dxenigma: invalid " + e.Type + " value: " + strconv.Quote(e.Value)
}

// Unwrap reports ErrInvalidArgument so callers can match every parse
// failure with errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrInvalidArgument
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error, such as an
// unset rotor type that was never validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "RotorType").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxenigma: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxenigma: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload and Reason provides a human-readable description of
// what went wrong.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal. It may contain key
	// material from a settings document and is left out of Error().
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxenigma: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxenigma: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Rotor", "Settings"), Field optionally identifies which field failed,
// Reason explains the failure and Value optionally carries the offending
// value.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxenigma: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxenigma: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxenigma: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxenigma: invalid " + e.Type + ": " + e.Reason
}

// Unwrap reports ErrInvalidArgument.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// ArgumentError reports an argument rejected at the boundary of a public
// operation.
//
// Op names the operation ("EncryptChar", "SetPlugs", ...), Arg the argument
// ("port1", "text[3]", ...), Value the rejected input as text, and Err the
// underlying cause (usually a *ParseError).
//
// # Example
//
//	&ArgumentError{Op: "SetPlugs", Arg: "port2", Value: "9", Err: parseErr}
//	// "dxenigma: SetPlugs: invalid argument port2 "9": ..."
type ArgumentError struct {
	Op    string
	Arg   string
	Value string
	Err   error
}

// Error implements the error interface for ArgumentError.
func (e *ArgumentError) Error() string {
	msg := "dxenigma: " + e.Op + ": invalid argument " + e.Arg + " " + strconv.Quote(e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns both ErrInvalidArgument and the underlying cause, so that
// errors.Is and errors.As see through the ArgumentError.
func (e *ArgumentError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidArgument}
	}
	return []error{ErrInvalidArgument, e.Err}
}
