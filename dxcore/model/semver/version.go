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

// Package semver holds the schema version carried by settings documents.
//
// Version wraps github.com/blang/semver/v4 for parsing and precedence and
// adds the Model contract used across dxcore. A settings reader accepts any
// document whose major version matches CurrentSchema.
package semver

import (
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model"
	bsemver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"
)

// CurrentSchema is the settings schema version this module writes.
var CurrentSchema = Version{Major: 1}

// Version is a SemVer 2.0.0 version: Major.Minor.Patch[-Prerelease][+Metadata].
//
// The zero value is 0.0.0 and stands for "not specified".
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
	Metadata   string
}

// ParseVersion parses "1.2.3", "v1.2.3" or "1.0.0-rc.1+build.7".
func ParseVersion(s string) (Version, error) {
	bv, err := bsemver.Parse(strings.TrimPrefix(strings.TrimSpace(s), "v"))
	if err != nil {
		return Version{}, fmt.Errorf("%w: %v", &errors.ParseError{Type: "Version", Value: s}, err)
	}
	return fromBlang(bv), nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical form, for example "1.0.0-rc.1".
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Metadata != "" {
		s += "+" + v.Metadata
	}
	return s
}

// Redacted returns String(); versions carry no secrets.
func (v Version) Redacted() string {
	return v.String()
}

// TypeName returns "Version".
func (v Version) TypeName() string {
	return "Version"
}

// IsZero reports whether v is exactly 0.0.0 without prerelease or metadata.
func (v Version) IsZero() bool {
	return v == Version{}
}

// Validate checks that v is a well-formed SemVer 2.0.0 version.
func (v Version) Validate() error {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return &errors.ValidationError{
			Type:   "Version",
			Reason: "components must be non-negative",
			Value:  v.String(),
		}
	}
	if _, err := v.toBlang(); err != nil {
		return &errors.ValidationError{Type: "Version", Reason: err.Error(), Value: v.String()}
	}
	return nil
}

// Compare returns -1, 0 or +1 following SemVer precedence. Metadata is
// ignored. Invalid versions compare by their numeric core only.
func (v Version) Compare(other Version) int {
	bv, err1 := v.toBlang()
	bo, err2 := other.toBlang()
	if err1 != nil || err2 != nil {
		return compareCore(v, other)
	}
	return bv.Compare(bo)
}

// Equal reports whether other is a Version (or *Version) with the same
// precedence as v.
func (v Version) Equal(other any) bool {
	switch o := other.(type) {
	case Version:
		return v.Compare(o) == 0
	case *Version:
		if o == nil {
			return false
		}
		return v.Compare(*o) == 0
	default:
		return false
	}
}

// Compatible reports whether a document written with schema v can be read
// by a reader of schema reader. Majors must match and v must not be newer
// than reader in minor version. The zero version is always compatible.
func (v Version) Compatible(reader Version) bool {
	if v.IsZero() {
		return true
	}
	return v.Major == reader.Major && v.Minor <= reader.Minor
}

// MarshalJSON encodes v as a JSON string.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a JSON string via ParseVersion.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes v as a scalar string.
func (v Version) MarshalYAML() (any, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.String(), nil
}

// UnmarshalYAML decodes a scalar via ParseVersion.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Version", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Version) toBlang() (bsemver.Version, error) {
	return bsemver.Parse(v.String())
}

func fromBlang(bv bsemver.Version) Version {
	var pre []string
	for _, p := range bv.Pre {
		pre = append(pre, p.String())
	}
	return Version{
		Major:      int(bv.Major),
		Minor:      int(bv.Minor),
		Patch:      int(bv.Patch),
		Prerelease: strings.Join(pre, "."),
		Metadata:   strings.Join(bv.Build, "."),
	}
}

func compareCore(a, b Version) int {
	for _, d := range [...]int{a.Major - b.Major, a.Minor - b.Minor, a.Patch - b.Patch} {
		switch {
		case d < 0:
			return -1
		case d > 0:
			return 1
		}
	}
	return 0
}

// Compile-time check that Version implements model.Model interface.
var _ model.Model = (*Version)(nil)
