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
	stderrors "errors"
	"testing"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model/letter"
	"gopkg.in/yaml.v3"
)

func TestType_Table(t *testing.T) {
	tests := []struct {
		typ    Type
		name   string
		wiring string
		notch  letter.Letter
	}{
		{I, "I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", letter.R},
		{II, "II", "AJDKSIRUXBLHWTMCQGZNPYFVOE", letter.F},
		{III, "III", "BDFHJLCPRTXVZNYEIWGAKMUSQO", letter.W},
		{IV, "IV", "ESOVPZJAYQUIRHXLNFTGKDCMWB", letter.K},
		{V, "V", "VZBRGITYUPSDNHLXAWMJQOFECK", letter.A},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.typ.Wiring(); got != tt.wiring {
				t.Errorf("Wiring() = %q, want %q", got, tt.wiring)
			}
			if got := tt.typ.Notch(); got != tt.notch {
				t.Errorf("Notch() = %v, want %v", got, tt.notch)
			}
		})
	}
}

func TestType_WiringIsPermutation(t *testing.T) {
	for _, typ := range Types {
		t.Run(typ.String(), func(t *testing.T) {
			var seen [letter.Size]bool
			w := typ.Wiring()
			if len(w) != letter.Size {
				t.Fatalf("wiring length = %d, want %d", len(w), letter.Size)
			}
			for i := 0; i < len(w); i++ {
				l, err := letter.Parse(rune(w[i]))
				if err != nil {
					t.Fatalf("wiring[%d] = %q: %v", i, w[i], err)
				}
				if seen[l] {
					t.Fatalf("wiring maps two contacts to %v", l)
				}
				seen[l] = true
			}
		})
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Type
		wantErr bool
	}{
		{"I", "I", I, false},
		{"ii lowercase", "ii", II, false},
		{"III", "III", III, false},
		{"Iv mixed", "Iv", IV, false},
		{"V padded", " V ", V, false},

		{"empty", "", 0, true},
		{"VI", "VI", 0, true},
		{"arabic", "3", 0, true},
		{"garbage", "rotor", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !stderrors.Is(err, errors.ErrInvalidArgument) {
				t.Errorf("ParseType(%q) error = %v, want ErrInvalidArgument", tt.input, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestType_Valid(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want bool
	}{
		{"unset", Type(0), false},
		{"I", I, true},
		{"V", V, true},
		{"six", Type(6), false},
		{"negative", Type(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
			if err := tt.typ.Validate(); (err == nil) != tt.want {
				t.Errorf("Validate() error = %v, want valid %v", err, tt.want)
			}
		})
	}

	if got := Type(0).String(); got != "unknown" {
		t.Errorf("Type(0).String() = %q, want unknown", got)
	}
	if got := Type(9).Wiring(); got != "" {
		t.Errorf("Type(9).Wiring() = %q, want empty", got)
	}
}

func TestType_ModelMethods(t *testing.T) {
	if got := III.TypeName(); got != "RotorType" {
		t.Errorf("TypeName() = %q", got)
	}
	if got := III.Redacted(); got != "III" {
		t.Errorf("Redacted() = %q", got)
	}
	if !Type(0).IsZero() || I.IsZero() {
		t.Error("only the unset type should be zero")
	}
	iv := IV
	if !IV.Equal(&iv) || IV.Equal(V) || IV.Equal("IV") || IV.Equal((*Type)(nil)) {
		t.Error("Equal() gave an unexpected result")
	}
}

func TestType_JSON(t *testing.T) {
	data, err := json.Marshal([]Type{I, II, III})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `["I","II","III"]` {
		t.Errorf("json.Marshal() = %s", data)
	}

	tests := []struct {
		name    string
		input   string
		want    Type
		wantErr bool
	}{
		{"string", `"iv"`, IV, false},
		{"number", `5`, V, false},
		{"zero number", `0`, 0, true},
		{"unknown string", `"VIII"`, 0, true},
		{"wrong type", `[]`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Type
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("json.Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := json.Marshal(Type(0)); err == nil {
		t.Error("json.Marshal() should refuse the unset type")
	}
}

func TestType_YAML(t *testing.T) {
	type doc struct {
		Rotors []Type `yaml:"rotors"`
	}

	var got doc
	if err := yaml.Unmarshal([]byte("rotors: [I, ii, V]\n"), &got); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if len(got.Rotors) != 3 || got.Rotors[0] != I || got.Rotors[1] != II || got.Rotors[2] != V {
		t.Errorf("yaml.Unmarshal() = %v", got.Rotors)
	}

	data, err := yaml.Marshal(got)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	var again doc
	if err := yaml.Unmarshal(data, &again); err != nil {
		t.Fatalf("yaml.Unmarshal(round-trip) error = %v", err)
	}
	if len(again.Rotors) != 3 || again.Rotors[2] != V {
		t.Errorf("YAML round-trip = %v", again.Rotors)
	}

	if err := yaml.Unmarshal([]byte("rotors: [VI]\n"), &got); err == nil {
		t.Error("yaml.Unmarshal() should reject rotor VI")
	}
}

func TestType_Text(t *testing.T) {
	var typ Type
	if err := typ.UnmarshalText([]byte("iii")); err != nil || typ != III {
		t.Errorf("UnmarshalText() = %v, %v", typ, err)
	}
	if text, err := typ.MarshalText(); err != nil || string(text) != "III" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
	if _, err := Type(7).MarshalText(); err == nil {
		t.Error("MarshalText() should fail for invalid type")
	}
}
