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

// Package model defines the contracts shared by dxenigma's value types:
// letters, rotor and reflector types, plug pairs, stepping modes and machine
// settings.
//
// Every such type implements Model, which bundles validation, JSON and YAML
// serialization, safe logging, type identification and zero-value
// detection. The generic helpers in this package (ValidateAll, ToJSON,
// ToYAML, FromJSON, FromYAML, SafeString) rely on that contract.
//
// Model types are immutable values unless documented otherwise. The running
// cipher state (rotor offsets, plugboard wiring inside a machine) is NOT a
// Model: it is never serialized.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for dxenigma value types.
//
// Example implementation:
//
//	type MyModel struct {
//	    Field string
//	}
//
//	func (m MyModel) Validate() error { ... }
//	func (m MyModel) TypeName() string { return "MyModel" }
//	func (m MyModel) IsZero() bool { return m.Field == "" }
//	func (m MyModel) Redacted() string { return "MyModel{...}" }
//	func (m MyModel) String() string { return "MyModel{Field:" + m.Field + "}" }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*MyModel)(nil)  // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST be fast, deterministic and free of side effects. It returns
// nil if and only if the value satisfies every invariant of its type. The
// returned error SHOULD match errors.ErrInvalidArgument.
type Validatable interface {
	Validate() error
}

// Serializable defines the contract for types that round-trip through JSON
// and YAML.
//
// Marshal methods MUST refuse invalid values. Unmarshal methods MUST reject
// input that does not decode into a valid value.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations for logging.
//
// Redacted hides key material (rotor start positions, plug pairs) and is the
// only form that SHOULD reach production logs. String MAY include it.
type Loggable interface {
	Redacted() string
	String() string
}

// Identifiable defines the contract for types that identify themselves by a
// constant CamelCase type name, used in error messages and log fields.
type Identifiable interface {
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// hold their zero value. For several enum-like types the zero value is
// "unset" and therefore invalid; for Letter the zero value is A.
type ZeroCheckable interface {
	IsZero() bool
}

// Cloneable defines the contract for types that can create deep copies of
// themselves. The returned value MUST share no mutable state with the
// receiver.
//
// Plugboard and Rotor implement Cloneable; a machine copy is built from
// their clones.
type Cloneable[T any] interface {
	Clone() T
}
