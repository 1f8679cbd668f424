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

package rotor

import (
	"encoding/json"
	"strings"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model"
	"dirpx.dev/dxenigma/dxcore/model/letter"
	"gopkg.in/yaml.v3"
)

// Type selects one of the five interchangeable rotor wirings.
//
// The zero value is unset and invalid. A settings document that omits a
// rotor therefore fails validation; it never falls back to rotor I.
//
// Type satisfies model.Model. It encodes as its Roman numeral in JSON, YAML
// and text, and decoders MUST accept the numeral in any case as well as the
// numeric form in JSON:
//
//	rotors: [I, ii, III]        # YAML
//	{"rotors": ["I", 2, "III"]} // JSON
type Type int

const (
	// I is rotor I (wiring EKMFLGDQVZNTOWYHXUSPAIBRCJ, notch R).
	I Type = iota + 1
	// II is rotor II (wiring AJDKSIRUXBLHWTMCQGZNPYFVOE, notch F).
	II
	// III is rotor III (wiring BDFHJLCPRTXVZNYEIWGAKMUSQO, notch W).
	III
	// IV is rotor IV (wiring ESOVPZJAYQUIRHXLNFTGKDCMWB, notch K).
	IV
	// V is rotor V (wiring VZBRGITYUPSDNHLXAWMJQOFECK, notch A).
	V
)

// Types lists every valid rotor type in declaration order.
var Types = []Type{I, II, III, IV, V}

// record holds the constants behind a rotor type.
//
// wiring[i] is the letter that contact i (counted from A) is wired to.
// notch is the offset at which, after stepping into it, the rotor reports a
// carry to its neighbour.
type record struct {
	name   string
	wiring string
	notch  letter.Letter
}

// records is indexed by Type. Index 0 is the unset type and stays empty.
var records = [...]record{
	I:   {name: "I", wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", notch: letter.R},
	II:  {name: "II", wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", notch: letter.F},
	III: {name: "III", wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", notch: letter.W},
	IV:  {name: "IV", wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", notch: letter.K},
	V:   {name: "V", wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", notch: letter.A},
}

// table holds the forward and inverse permutations of one rotor type as
// alphabet indices.
type table struct {
	forward  [letter.Size]letter.Letter
	backward [letter.Size]letter.Letter
}

// tables is derived once from records and never written afterwards.
var tables [len(records)]table

func init() {
	for _, t := range Types {
		w := records[t].wiring
		for i := 0; i < letter.Size; i++ {
			out := letter.Letter(w[i] - 'A')
			tables[t].forward[i] = out
			tables[t].backward[out] = letter.Letter(i)
		}
	}
}

// ParseType converts a roman numeral ("I" ... "V") into a Type. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseType(s string) (Type, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	for _, t := range Types {
		if records[t].name == norm {
			return t, nil
		}
	}
	return 0, &errors.ParseError{Type: "RotorType", Value: s}
}

// String returns the roman numeral of t, or "unknown".
func (t Type) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return records[t].name
}

// Wiring returns the 26-letter permutation of t, or "" when t is invalid.
func (t Type) Wiring() string {
	if !t.Valid() {
		return ""
	}
	return records[t].wiring
}

// Notch returns the notch letter of t. The result is meaningless when t is
// invalid.
func (t Type) Notch() letter.Letter {
	if !t.Valid() {
		return letter.A
	}
	return records[t].notch
}

// Valid reports whether t is one of I..V.
func (t Type) Valid() bool {
	return t >= I && t <= V
}

// Validate returns a *ValidationError when t is not one of I..V.
func (t Type) Validate() error {
	if !t.Valid() {
		return &errors.ValidationError{
			Type:   "RotorType",
			Reason: "invalid RotorType value",
			Value:  int(t),
		}
	}
	return nil
}

// TypeName returns "RotorType".
func (t Type) TypeName() string {
	return "RotorType"
}

// Redacted returns String(). The rotor order is part of a key, but an
// individual type is not; settings.Settings decides what to hide.
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

// MarshalJSON encodes t as its roman numeral.
func (t Type) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, &errors.MarshalError{Type: "RotorType", Value: int(t)}
	}
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON accepts the roman numeral ("III") or the numeric form (3).
func (t *Type) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "RotorType", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "RotorType", Data: data, Reason: err.Error()}
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
		return &errors.UnmarshalError{Type: "RotorType", Data: data, Reason: err.Error()}
	}
	if !Type(i).Valid() {
		return &errors.UnmarshalError{Type: "RotorType", Data: data, Reason: "invalid numeric value"}
	}
	*t = Type(i)
	return nil
}

// MarshalYAML encodes t as its roman numeral.
func (t Type) MarshalYAML() (any, error) {
	if !t.Valid() {
		return nil, &errors.MarshalError{Type: "RotorType", Value: int(t)}
	}
	return t.String(), nil
}

// UnmarshalYAML decodes a roman numeral scalar.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "RotorType", Data: []byte(node.Value), Reason: err.Error()}
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
		return nil, &errors.MarshalError{Type: "RotorType", Value: int(t)}
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
