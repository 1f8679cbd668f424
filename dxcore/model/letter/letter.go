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

// Package letter defines Letter, the 26-symbol alphabet every dxenigma
// component operates on.
//
// A Letter is stored as its alphabet index (A=0 ... Z=25). Input is
// case-insensitive; the canonical textual form is a single uppercase ASCII
// letter. Anything outside A-Z after case normalization is rejected with an
// error that matches errors.ErrInvalidArgument.
package letter

import (
	"encoding/json"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Size is the number of letters in the alphabet.
const Size = 26

// Letter is one symbol of the alphabet, held as its index from 'A'.
//
// The zero value is A. Values of 26 and above are invalid; they can only
// arise from explicit numeric conversion or corrupted input, and every
// operation that accepts a Letter rejects them through Validate.
type Letter uint8

// Alphabet constants.
const (
	A Letter = iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
)

// Parse converts a rune into a Letter.
//
// Only ASCII input is considered. The rune is then upper-cased with
// unicode.ToUpper, so 'a' and 'A' parse to the same Letter. Digits,
// punctuation and every non-ASCII rune are rejected with a *ParseError,
// including runes whose upper case is an ASCII letter, such as the dotless
// 'ı' (U+0131) and the long 'ſ' (U+017F).
func Parse(r rune) (Letter, error) {
	if r > unicode.MaxASCII {
		return A, &errors.ParseError{Type: "Letter", Value: string(r)}
	}
	u := unicode.ToUpper(r)
	if u < 'A' || u > 'Z' {
		return A, &errors.ParseError{Type: "Letter", Value: string(r)}
	}
	return Letter(u - 'A'), nil
}

// ParseString converts a one-letter string into a Letter.
//
// The string must hold exactly one rune; Parse decides whether that rune is
// acceptable.
func ParseString(s string) (Letter, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return A, &errors.ParseError{Type: "Letter", Value: s}
	}
	return Parse(r)
}

// MustParse is like Parse but panics on invalid input. It is intended for
// constants and test fixtures.
func MustParse(r rune) Letter {
	l, err := Parse(r)
	if err != nil {
		panic(err)
	}
	return l
}

// FromIndex maps any integer onto the alphabet using a floor modulus, so
// FromIndex(-1) is Z and FromIndex(26) is A.
func FromIndex(i int) Letter {
	m := i % Size
	if m < 0 {
		m += Size
	}
	return Letter(m)
}

// Index returns the alphabet position of l (A=0).
func (l Letter) Index() int {
	return int(l)
}

// Rune returns the uppercase ASCII rune for l, or utf8.RuneError when l is
// invalid.
func (l Letter) Rune() rune {
	if !l.Valid() {
		return utf8.RuneError
	}
	return 'A' + rune(l)
}

// String returns the single uppercase letter, or "?" for invalid values.
func (l Letter) String() string {
	if !l.Valid() {
		return "?"
	}
	return string(l.Rune())
}

// Shift returns the letter n positions after l, wrapping around the alphabet.
// Negative n shifts backwards.
func (l Letter) Shift(n int) Letter {
	return FromIndex(int(l) + n)
}

// Next returns the following letter, wrapping Z to A.
func (l Letter) Next() Letter {
	return l.Shift(1)
}

// Valid reports whether l lies in A-Z.
func (l Letter) Valid() bool {
	return l < Size
}

// Validate returns a *ValidationError when l is outside the alphabet.
func (l Letter) Validate() error {
	if !l.Valid() {
		return &errors.ValidationError{
			Type:   "Letter",
			Reason: "letter index out of range A-Z",
			Value:  int(l),
		}
	}
	return nil
}

// TypeName returns "Letter".
func (l Letter) TypeName() string {
	return "Letter"
}

// Redacted returns the same representation as String. A single letter on its
// own carries no key material; types that group letters into a key
// (settings.Settings) redact at their own level.
func (l Letter) Redacted() string {
	return l.String()
}

// IsZero reports whether l is A. The zero value is a valid letter.
func (l Letter) IsZero() bool {
	return l == A
}

// Equal reports whether other is the same letter. It accepts Letter and
// *Letter.
func (l Letter) Equal(other any) bool {
	switch v := other.(type) {
	case Letter:
		return l == v
	case *Letter:
		if v == nil {
			return false
		}
		return l == *v
	default:
		return false
	}
}

// MarshalJSON encodes l as a one-letter JSON string.
func (l Letter) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, &errors.MarshalError{Type: "Letter", Value: int(l)}
	}
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON decodes a one-letter JSON string, in either case.
func (l *Letter) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Letter", Data: data, Reason: "empty data"}
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Letter", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseString(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MarshalYAML encodes l as a one-letter scalar.
func (l Letter) MarshalYAML() (any, error) {
	if !l.Valid() {
		return nil, &errors.MarshalError{Type: "Letter", Value: int(l)}
	}
	return l.String(), nil
}

// UnmarshalYAML decodes a one-letter scalar.
func (l *Letter) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Letter", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseString(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Letter) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, &errors.MarshalError{Type: "Letter", Value: int(l)}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Letter) UnmarshalText(text []byte) error {
	parsed, err := ParseString(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Compile-time check that Letter implements model.Model interface.
var _ model.Model = (*Letter)(nil)
