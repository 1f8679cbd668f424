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

package plugboard

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model"
	"dirpx.dev/dxenigma/dxcore/model/letter"
	"gopkg.in/yaml.v3"
)

// Pair is one plug cable joining two distinct letters.
//
// Its textual form is the two letters side by side, "AB". Pair{A, B} and
// Pair{B, A} describe the same cable; Equal treats them as equal.
//
// A valid Pair MUST join two different letters. The zero value Pair{A, A}
// is therefore invalid and reports IsZero.
type Pair struct {
	A letter.Letter
	B letter.Letter
}

// ParsePair parses a two-letter string such as "AB" or "qz".
//
// Surrounding whitespace is ignored. Anything other than exactly two letters
// A-Z (in either case) is a *errors.ParseError; a letter paired with itself,
// as in "AA", is a *errors.ValidationError.
//
// Example usage:
//
//	p, err := plugboard.ParsePair("qz")
//	// p == Pair{A: letter.Q, B: letter.Z}, err == nil
func ParsePair(s string) (Pair, error) {
	trimmed := strings.TrimSpace(s)
	if utf8.RuneCountInString(trimmed) != 2 {
		return Pair{}, &errors.ParseError{Type: "Pair", Value: s}
	}

	first, size := utf8.DecodeRuneInString(trimmed)
	second, _ := utf8.DecodeRuneInString(trimmed[size:])

	a, err := letter.Parse(first)
	if err != nil {
		return Pair{}, &errors.ParseError{Type: "Pair", Value: s}
	}
	b, err := letter.Parse(second)
	if err != nil {
		return Pair{}, &errors.ParseError{Type: "Pair", Value: s}
	}

	p := Pair{A: a, B: b}
	if err := p.Validate(); err != nil {
		return Pair{}, err
	}
	return p, nil
}

// ParsePairs parses a list such as "AB,CD" or "AB CD". Commas, spaces and
// tabs separate pairs and MAY be mixed. Empty input yields no pairs.
//
// ParsePairs stops at the first malformed pair and returns its error. It
// does not check that the pairs are disjoint; New and Connect resolve
// overlaps, and settings validation rejects them.
func ParsePairs(s string) ([]Pair, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	pairs := make([]Pair, 0, len(fields))
	for _, f := range fields {
		p, err := ParsePair(f)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// Canonical returns p with its letters in alphabetical order.
func (p Pair) Canonical() Pair {
	if p.B < p.A {
		return Pair{A: p.B, B: p.A}
	}
	return p
}

// Has reports whether l is one of the two letters of p.
func (p Pair) Has(l letter.Letter) bool {
	return p.A == l || p.B == l
}

// String returns the two letters, for example "AB".
func (p Pair) String() string {
	return p.A.String() + p.B.String()
}

// Redacted masks both letters.
func (p Pair) Redacted() string {
	return "**"
}

// TypeName returns "Pair".
func (p Pair) TypeName() string {
	return "Pair"
}

// IsZero reports whether p is the zero Pair{A, A}.
func (p Pair) IsZero() bool {
	return p.A == letter.A && p.B == letter.A
}

// Equal reports whether other joins the same two letters, in either order.
func (p Pair) Equal(other any) bool {
	var o Pair
	switch v := other.(type) {
	case Pair:
		o = v
	case *Pair:
		if v == nil {
			return false
		}
		o = *v
	default:
		return false
	}
	return p.Canonical() == o.Canonical()
}

// Validate checks that both letters are valid and distinct.
func (p Pair) Validate() error {
	if err := p.A.Validate(); err != nil {
		return err
	}
	if err := p.B.Validate(); err != nil {
		return err
	}
	if p.A == p.B {
		return &errors.ValidationError{
			Type:   "Pair",
			Reason: "a letter cannot be plugged to itself",
			Value:  p.String(),
		}
	}
	return nil
}

// MarshalJSON encodes p as a two-letter JSON string.
func (p Pair) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a two-letter JSON string.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Pair", Data: data, Reason: err.Error()}
	}
	parsed, err := ParsePair(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML encodes p as a two-letter scalar.
func (p Pair) MarshalYAML() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.String(), nil
}

// UnmarshalYAML decodes a two-letter scalar.
func (p *Pair) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Pair", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParsePair(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Pair) MarshalText() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pair) UnmarshalText(text []byte) error {
	parsed, err := ParsePair(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Compile-time check that Pair implements model.Model interface.
var _ model.Model = (*Pair)(nil)
