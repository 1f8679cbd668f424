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

package reflector

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model/letter"
	"gopkg.in/yaml.v3"
)

func TestWirings_Literal(t *testing.T) {
	tests := []struct {
		typ    Type
		wiring string
	}{
		{A, "EJMZALYXVBWFCRQUONTSPIKHGD"},
		{B, "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
		{C, "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if got := tt.typ.Wiring(); got != tt.wiring {
				t.Errorf("Wiring() = %q, want %q", got, tt.wiring)
			}
		})
	}
}

// The constant tables must be involutions without fixed points, checked
// directly against the literal strings.
func TestWirings_InvolutionWithoutFixedPoint(t *testing.T) {
	for _, typ := range Types {
		t.Run(typ.String(), func(t *testing.T) {
			w := typ.Wiring()
			if len(w) != letter.Size {
				t.Fatalf("wiring length = %d, want %d", len(w), letter.Size)
			}
			for i := 0; i < letter.Size; i++ {
				self := byte('A' + i)
				partner := w[i]
				if partner == self {
					t.Errorf("%c maps to itself", self)
				}
				if back := w[partner-'A']; back != self {
					t.Errorf("%c -> %c -> %c, want involution", self, partner, back)
				}
			}
		})
	}
}

func TestFor_SharesInstance(t *testing.T) {
	for _, typ := range Types {
		r1, err := For(typ)
		if err != nil {
			t.Fatalf("For(%v) error = %v", typ, err)
		}
		r2, err := For(typ)
		if err != nil {
			t.Fatalf("For(%v) error = %v", typ, err)
		}
		if r1 != r2 {
			t.Errorf("For(%v) returned distinct instances", typ)
		}
		if r1.Type() != typ {
			t.Errorf("Type() = %v, want %v", r1.Type(), typ)
		}
	}
}

func TestFor_Invalid(t *testing.T) {
	for _, typ := range []Type{0, 4, -1} {
		r, err := For(typ)
		if err == nil || r != nil {
			t.Errorf("For(%d) = %v, %v; want error", typ, r, err)
		}
		if !stderrors.Is(err, errors.ErrInvalidArgument) {
			t.Errorf("For(%d) error = %v, want ErrInvalidArgument", typ, err)
		}
	}
}

func TestReflector_Reflect(t *testing.T) {
	tests := []struct {
		typ  Type
		in   letter.Letter
		want letter.Letter
	}{
		{A, letter.A, letter.E},
		{A, letter.E, letter.A},
		{B, letter.A, letter.Y},
		{B, letter.Z, letter.T},
		{C, letter.A, letter.F},
		{C, letter.F, letter.A},
	}

	for _, tt := range tests {
		r, err := For(tt.typ)
		if err != nil {
			t.Fatalf("For(%v) error = %v", tt.typ, err)
		}
		got, err := r.Reflect(tt.in)
		if err != nil {
			t.Fatalf("Reflect(%v) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%v Reflect(%v) = %v, want %v", tt.typ, tt.in, got, tt.want)
		}
	}

	r, _ := For(B)
	if _, err := r.Reflect(letter.Letter(26)); !stderrors.Is(err, errors.ErrInvalidArgument) {
		t.Errorf("Reflect(26) error = %v, want ErrInvalidArgument", err)
	}
	if got := r.String(); got != "Reflector{Type:B}" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input   string
		want    Type
		wantErr bool
	}{
		{"A", A, false},
		{"b", B, false},
		{" C ", C, false},
		{"D", 0, true},
		{"", 0, true},
		{"AB", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseType(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestType_ModelMethods(t *testing.T) {
	if got := B.TypeName(); got != "ReflectorType" {
		t.Errorf("TypeName() = %q", got)
	}
	if got := C.Redacted(); got != "C" {
		t.Errorf("Redacted() = %q", got)
	}
	if got := Type(9).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
	if !Type(0).IsZero() || A.IsZero() {
		t.Error("only the unset type should be zero")
	}
	b := B
	if !B.Equal(&b) || B.Equal(C) || B.Equal("B") {
		t.Error("Equal() gave an unexpected result")
	}
}

func TestType_Serialization(t *testing.T) {
	data, err := json.Marshal(C)
	if err != nil || string(data) != `"C"` {
		t.Errorf("json.Marshal() = %s, %v", data, err)
	}

	var got Type
	if err := json.Unmarshal([]byte(`"b"`), &got); err != nil || got != B {
		t.Errorf("json.Unmarshal(string) = %v, %v", got, err)
	}
	if err := json.Unmarshal([]byte(`1`), &got); err != nil || got != A {
		t.Errorf("json.Unmarshal(number) = %v, %v", got, err)
	}
	if err := json.Unmarshal([]byte(`4`), &got); err == nil {
		t.Error("json.Unmarshal(4) should fail")
	}

	type doc struct {
		Reflector Type `yaml:"reflector"`
	}
	var d doc
	if err := yaml.Unmarshal([]byte("reflector: c\n"), &d); err != nil || d.Reflector != C {
		t.Errorf("yaml.Unmarshal() = %v, %v", d.Reflector, err)
	}
	if err := yaml.Unmarshal([]byte("reflector: Q\n"), &d); err == nil {
		t.Error("yaml.Unmarshal() should reject reflector Q")
	}
	out, err := yaml.Marshal(doc{Reflector: A})
	if err != nil || string(out) != "reflector: A\n" {
		t.Errorf("yaml.Marshal() = %q, %v", out, err)
	}
	if _, err := yaml.Marshal(doc{}); err == nil {
		t.Error("yaml.Marshal() should refuse the unset type")
	}

	if err := got.UnmarshalText([]byte("a")); err != nil || got != A {
		t.Errorf("UnmarshalText() = %v, %v", got, err)
	}
	if text, err := B.MarshalText(); err != nil || string(text) != "B" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
}
