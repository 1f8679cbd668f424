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

package semver_test

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model/semver"
	"gopkg.in/yaml.v3"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    semver.Version
		wantErr bool
	}{
		{"plain", "1.2.3", semver.Version{Major: 1, Minor: 2, Patch: 3}, false},
		{"v prefix", "v1.0.0", semver.Version{Major: 1}, false},
		{"prerelease", "1.0.0-rc.1", semver.Version{Major: 1, Prerelease: "rc.1"}, false},
		{"metadata", "1.1.0+build.7", semver.Version{Major: 1, Minor: 1, Metadata: "build.7"}, false},
		{"padded", " 2.0.0 ", semver.Version{Major: 2}, false},

		{"empty", "", semver.Version{}, true},
		{"two parts", "1.0", semver.Version{}, true},
		{"letters", "one.two.three", semver.Version{}, true},
		{"leading zero", "01.0.0", semver.Version{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := semver.ParseVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !stderrors.Is(err, errors.ErrInvalidArgument) {
					t.Errorf("ParseVersion(%q) error = %v, want ErrInvalidArgument", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersion_String(t *testing.T) {
	tests := []struct {
		version semver.Version
		want    string
	}{
		{semver.Version{}, "0.0.0"},
		{semver.CurrentSchema, "1.0.0"},
		{semver.Version{Major: 1, Prerelease: "rc.1", Metadata: "sha.5114f85"}, "1.0.0-rc.1+sha.5114f85"},
	}

	for _, tt := range tests {
		if got := tt.version.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.version.Redacted(); got != tt.want {
			t.Errorf("Redacted() = %q, want %q", got, tt.want)
		}
	}
}

func TestVersion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		version semver.Version
		wantErr bool
	}{
		{"zero", semver.Version{}, false},
		{"current", semver.CurrentSchema, false},
		{"negative", semver.Version{Major: -1}, true},
		{"bad prerelease", semver.Version{Major: 1, Prerelease: "a..b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.version.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !stderrors.Is(err, errors.ErrInvalidArgument) {
				t.Errorf("Validate() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.1.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.0.0-rc.1", "1.0.0", -1},
		{"1.0.0+a", "1.0.0+b", 0},
	}

	for _, tt := range tests {
		a := semver.MustParseVersion(tt.a)
		b := semver.MustParseVersion(tt.b)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}

	neg := semver.Version{Major: -1}
	if got := neg.Compare(semver.CurrentSchema); got != -1 {
		t.Errorf("Compare() of an invalid version = %d, want -1", got)
	}
}

func TestVersion_Compatible(t *testing.T) {
	tests := []struct {
		doc  string
		want bool
	}{
		{"1.0.0", true},
		{"1.0.5", true},
		{"1.1.0", false},
		{"2.0.0", false},
		{"0.9.0", false},
	}

	for _, tt := range tests {
		v := semver.MustParseVersion(tt.doc)
		if got := v.Compatible(semver.CurrentSchema); got != tt.want {
			t.Errorf("%s.Compatible(%s) = %v, want %v", tt.doc, semver.CurrentSchema, got, tt.want)
		}
	}

	if !(semver.Version{}).Compatible(semver.CurrentSchema) {
		t.Error("an unspecified schema should be compatible")
	}
}

func TestVersion_ModelMethods(t *testing.T) {
	v := semver.MustParseVersion("1.0.0+x")
	if v.TypeName() != "Version" {
		t.Errorf("TypeName() = %q", v.TypeName())
	}
	if v.IsZero() || !(semver.Version{}).IsZero() {
		t.Error("IsZero() gave an unexpected result")
	}
	if !v.Equal(semver.CurrentSchema) || !v.Equal(&semver.CurrentSchema) || v.Equal("1.0.0") {
		t.Error("Equal() gave an unexpected result")
	}
}

func TestVersion_Serialization(t *testing.T) {
	data, err := json.Marshal(semver.CurrentSchema)
	if err != nil || string(data) != `"1.0.0"` {
		t.Errorf("json.Marshal() = %s, %v", data, err)
	}

	var v semver.Version
	if err := json.Unmarshal([]byte(`"v1.2.0"`), &v); err != nil || v != (semver.Version{Major: 1, Minor: 2}) {
		t.Errorf("json.Unmarshal() = %+v, %v", v, err)
	}
	if err := json.Unmarshal([]byte(`1`), &v); err == nil {
		t.Error("json.Unmarshal(number) should fail")
	}

	type doc struct {
		Schema semver.Version `yaml:"schema"`
	}
	var d doc
	if err := yaml.Unmarshal([]byte("schema: 1.0.0\n"), &d); err != nil || d.Schema != semver.CurrentSchema {
		t.Errorf("yaml.Unmarshal() = %+v, %v", d.Schema, err)
	}
	if err := yaml.Unmarshal([]byte("schema: banana\n"), &d); err == nil {
		t.Error("yaml.Unmarshal() should reject a malformed version")
	}
	out, err := yaml.Marshal(doc{Schema: semver.CurrentSchema})
	if err != nil || string(out) != "schema: 1.0.0\n" {
		t.Errorf("yaml.Marshal() = %q, %v", out, err)
	}
}
