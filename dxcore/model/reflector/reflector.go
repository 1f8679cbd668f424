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

// Package reflector models the fixed reflector that turns the signal back
// through the rotor stack.
//
// A Reflector has no moving state. For each Type the package holds exactly
// one instance, and For hands out pointers to it, so every machine and every
// machine copy using reflector B shares the same *Reflector.
package reflector

import (
	"encoding/json"
	"strings"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model"
	"dirpx.dev/dxenigma/dxcore/model/letter"
	"gopkg.in/yaml.v3"
)

// Type selects one of the reflector wirings. The zero value is unset and
// invalid.
type Type int

const (
	// A is reflector A (EJMZALYXVBWFCRQUONTSPIKHGD).
	A Type = iota + 1
	// B is reflector B (YRUHQSLDPXNGOKMIEBFZCWVJAT).
	B
	// C is reflector C (FVPJIAOYEDRZXWGCTKUQSBNMHL).
	C
)

// Types lists every valid reflector type in declaration order.
var Types = []Type{A, B, C}

var names = [...]string{A: "A", B: "B", C: "C"}

// wirings is indexed by Type. Each entry is an involution without fixed
// points.
var wirings = [...]string{
	A: "EJMZALYXVBWFCRQUONTSPIKHGD",
	B: "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	C: "FVPJIAOYEDRZXWGCTKUQSBNMHL",
}

// Reflector is an immutable reflector instance.
type Reflector struct {
	typ    Type
	wiring [letter.Size]letter.Letter
}

var instances [len(wirings)]*Reflector

func init() {
	for _, t := range Types {
		r := &Reflector{typ: t}
		for i := 0; i < letter.Size; i++ {
			r.wiring[i] = letter.Letter(wirings[t][i] - 'A')
		}
		instances[t] = r
	}
}

// For returns the shared reflector of type t.
func For(t Type) (*Reflector, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return instances[t], nil
}

// Type returns the reflector type.
func (r *Reflector) Type() Type {
	return r.typ
}

// Reflect returns the partner of l under the reflector wiring.
func (r *Reflector) Reflect(l letter.Letter) (letter.Letter, error) {
	if err := l.Validate(); err != nil {
		return letter.A, err
	}
	return r.wiring[l], nil
}

// String returns "Reflector{Type:B}".
func (r *Reflector) String() string {
	return "Reflector{Type:" + r.typ.String() + "}"
}

// ParseType converts "A", "B" or "C" (any case) into a Type.
func ParseType(s string) (Type, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	for _, t := range Types {
		if names[t] == norm {
			return t, nil
		}
	}
	return 0, &errors.ParseError{Type: "ReflectorType", Value: s}
}

// String returns the reflector letter, or "unknown".
func (t Type) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return names[t]
}

// Wiring returns the 26-letter table of t, or "" when t is invalid.
func (t Type) Wiring() string {
	if !t.Valid() {
		return ""
	}
	return wirings[t]
}

// Valid reports whether t is A, B or C.
func (t Type) Valid() bool {
	return t >= A && t <= C
}

// Validate returns a *ValidationError when t is not A, B or C.
func (t Type) Validate() error {
	if !t.Valid() {
		return &errors.ValidationError{
			Type:   "ReflectorType",
			Reason: "invalid ReflectorType value",
			Value:  int(t),
		}
	}
	return nil
}

// TypeName returns "ReflectorType".
func (t Type) TypeName() string {
	return "ReflectorType"
}

// Redacted returns String().
func (t Type) Redacted() string {
	return t.String()
}

// IsZero reports whether t is unset.
func (t Type) IsZero() bool {
	return t == 0
}

// Equal reports whether other is the same Type (value or pointer).
func (t Type) Equal(other any) bool {
	switch v := other.(type) {
	case Type:
		return t == v
	case *Type:
		if v == nil {
			return false
		}
		return t == *v
	default:
		return false
	}
}

// MarshalJSON encodes t as its letter.
func (t Type) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, &errors.MarshalError{Type: "ReflectorType", Value: int(t)}
	}
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON accepts the letter ("B") or the numeric form (2).
func (t *Type) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "ReflectorType", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "ReflectorType", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseType(s)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "ReflectorType", Data: data, Reason: err.Error()}
	}
	if !Type(i).Valid() {
		return &errors.UnmarshalError{Type: "ReflectorType", Data: data, Reason: "invalid numeric value"}
	}
	*t = Type(i)
	return nil
}

// MarshalYAML encodes t as its letter.
func (t Type) MarshalYAML() (any, error) {
	if !t.Valid() {
		return nil, &errors.MarshalError{Type: "ReflectorType", Value: int(t)}
	}
	return t.String(), nil
}

// UnmarshalYAML decodes a letter scalar.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "ReflectorType", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &errors.MarshalError{Type: "ReflectorType", Value: int(t)}
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Compile-time check that Type implements model.Model interface.
var _ model.Model = (*Type)(nil)
