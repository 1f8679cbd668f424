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

package model

import (
	"encoding/json"

	"dirpx.dev/dxenigma/dxcore/errors"
	"gopkg.in/yaml.v3"
)

// Stepping selects how a machine advances its rotors before each letter.
//
// Both modes step the rightmost rotor (rotor1) on every letter. They differ
// in how the middle rotor (rotor2) hands its carry to the left rotor
// (rotor3).
type Stepping int

const (
	// SingleCarry is a plain odometer: rotor1 always steps, rotor2 steps
	// when rotor1 reports a carry, and rotor3 steps when rotor2 reports a
	// carry in the same keypress.
	//
	// This is the default and reproduces the reference encodings of this
	// simulator. It does not model the mechanical double step.
	//
	// Example (rotors III, II, I from the right, positions U D A):
	//   U D A -> V D A -> W E A -> X E A
	SingleCarry Stepping = iota

	// DoubleStep models the ratchet anomaly of the historical machine:
	// when rotor2 sits one step before its notch, it steps on the next
	// keypress together with rotor3, regardless of rotor1. As a result
	// rotor2 steps on two consecutive keypresses.
	//
	// Example (rotors III, II, I from the right, positions U D A):
	//   U D A -> V D A -> W E A -> X F B
	DoubleStep
)

// Compile-time check that Stepping implements model.Model interface.
var _ Model = (*Stepping)(nil)

// String constants for Stepping values used in settings files and flags.
const (
	SingleCarryStr = "single-carry"
	DoubleStepStr  = "double-step"
)

// String returns the canonical kebab-case name, or "unknown".
func (s Stepping) String() string {
	switch s {
	case SingleCarry:
		return SingleCarryStr
	case DoubleStep:
		return DoubleStepStr
	default:
		return "unknown"
	}
}

// ParseStepping converts a textual representation into a Stepping value.
//
// Accepted inputs:
//
//	"single-carry", "SingleCarry", "single_carry", "SINGLE_CARRY" -> SingleCarry
//	"double-step",  "DoubleStep",  "double_step",  "DOUBLE_STEP"  -> DoubleStep
func ParseStepping(str string) (Stepping, error) {
	switch str {
	case SingleCarryStr, "SingleCarry", "single_carry", "SINGLE_CARRY":
		return SingleCarry, nil
	case DoubleStepStr, "DoubleStep", "double_step", "DOUBLE_STEP":
		return DoubleStep, nil
	default:
		return SingleCarry, &errors.ParseError{Type: "Stepping", Value: str}
	}
}

// Valid reports whether the Stepping value is one of the defined constants.
func (s Stepping) Valid() bool {
	return s == SingleCarry || s == DoubleStep
}

// MarshalJSON implements json.Marshaler for Stepping.
func (s Stepping) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Stepping", Value: int(s)}
	}
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Stepping.
//
// Both the string form ("double-step") and the numeric form (1) are
// accepted. Numbers outside the defined constants are rejected.
func (s *Stepping) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Stepping", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Stepping", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseStepping(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Stepping", Data: data, Reason: err.Error()}
	}
	if !Stepping(i).Valid() {
		return &errors.UnmarshalError{Type: "Stepping", Data: data, Reason: "invalid numeric value"}
	}
	*s = Stepping(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler for Stepping.
func (s Stepping) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Stepping", Value: int(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Stepping.
func (s *Stepping) UnmarshalText(text []byte) error {
	parsed, err := ParseStepping(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// TypeName returns "Stepping".
func (s Stepping) TypeName() string {
	return "Stepping"
}

// Redacted returns String(); a stepping mode is not key material.
func (s Stepping) Redacted() string {
	return s.String()
}

// IsZero reports whether s is SingleCarry. The zero value is valid and is
// the default mode.
func (s Stepping) IsZero() bool {
	return s == SingleCarry
}

// Equal reports whether other is the same Stepping (value or pointer).
func (s Stepping) Equal(other any) bool {
	switch v := other.(type) {
	case Stepping:
		return s == v
	case *Stepping:
		if v == nil {
			return false
		}
		return s == *v
	default:
		return false
	}
}

// Validate returns a *ValidationError for values outside the defined
// constants.
func (s Stepping) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{
			Type:   "Stepping",
			Reason: "invalid Stepping value",
			Value:  int(s),
		}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Stepping.
func (s Stepping) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Stepping", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Stepping.
func (s *Stepping) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Stepping", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseStepping(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
