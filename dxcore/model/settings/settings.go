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

// Package settings describes how a machine is built: which rotors sit in
// which slot, the reflector, the rotor start positions, the plug pairs and
// the stepping mode.
//
// A Settings value is a construction document. It is read from YAML or JSON
// and validated as a whole; the machine never writes its running state back
// into one.
//
//	schema: 1.0.0
//	rotors: [I, II, III]   # fastest rotor first
//	reflector: A
//	positions: [A, A, A]
//	plugs: [AB, CD]
//	stepping: single-carry
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model"
	"dirpx.dev/dxenigma/dxcore/model/letter"
	"dirpx.dev/dxenigma/dxcore/model/plugboard"
	"dirpx.dev/dxenigma/dxcore/model/reflector"
	"dirpx.dev/dxenigma/dxcore/model/rotor"
	"dirpx.dev/dxenigma/dxcore/model/semver"
	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// Slots is the number of rotor slots in a machine.
const Slots = 3

// Settings is the construction document of a machine.
type Settings struct {
	// Schema is the document schema version. Zero means unspecified.
	Schema semver.Version `json:"schema,omitzero" yaml:"schema,omitempty"`

	// Rotors lists the rotor types from the fastest (rightmost) slot to the
	// slowest.
	Rotors []rotor.Type `json:"rotors" yaml:"rotors"`

	Reflector reflector.Type `json:"reflector" yaml:"reflector"`

	// Positions lists the start offsets in the same slot order as Rotors.
	Positions []letter.Letter `json:"positions" yaml:"positions"`

	Plugs []plugboard.Pair `json:"plugs,omitempty" yaml:"plugs,omitempty"`

	Stepping model.Stepping `json:"stepping,omitempty" yaml:"stepping,omitempty"`
}

// Load reads a settings document from path. Files ending in ".json" are
// decoded as JSON, everything else as YAML. The result is validated.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}

	var s Settings
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = model.FromJSON(data, &s)
	} else {
		err = model.FromYAML(data, &s)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML (or JSON, which YAML accepts) document.
func Parse(data []byte) (Settings, error) {
	var s Settings
	if err := model.FromYAML(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Plugboard builds the board described by Plugs.
func (s Settings) Plugboard() (plugboard.Plugboard, error) {
	return plugboard.New(s.Plugs...)
}

// Validate reports every problem in s at once.
func (s Settings) Validate() error {
	c := rxmerr.NewCollector()

	if err := s.Schema.Validate(); err != nil {
		c.Append(field("Schema", err))
	} else if !s.Schema.Compatible(semver.CurrentSchema) {
		c.Append(&errors.ValidationError{
			Type:   "Settings",
			Field:  "Schema",
			Reason: "unsupported schema " + s.Schema.String() + ", want " + semver.CurrentSchema.String(),
		})
	}

	if len(s.Rotors) != Slots {
		c.Append(&errors.ValidationError{
			Type:   "Settings",
			Field:  "Rotors",
			Reason: "want " + strconv.Itoa(Slots) + " rotors, got " + strconv.Itoa(len(s.Rotors)),
		})
	}
	if err := model.ValidateAll(s.Rotors); err != nil {
		c.Append(field("Rotors", err))
	}

	if err := s.Reflector.Validate(); err != nil {
		c.Append(field("Reflector", err))
	}

	if len(s.Positions) != Slots {
		c.Append(&errors.ValidationError{
			Type:   "Settings",
			Field:  "Positions",
			Reason: "want " + strconv.Itoa(Slots) + " positions, got " + strconv.Itoa(len(s.Positions)),
		})
	}
	if err := model.ValidateAll(s.Positions); err != nil {
		c.Append(field("Positions", err))
	}

	var used [letter.Size]bool
	for i, p := range s.Plugs {
		if err := p.Validate(); err != nil {
			c.Append(field("Plugs["+strconv.Itoa(i)+"]", err))
			continue
		}
		for _, l := range [...]letter.Letter{p.A, p.B} {
			if used[l] {
				c.Append(&errors.ValidationError{
					Type:   "Settings",
					Field:  "Plugs[" + strconv.Itoa(i) + "]",
					Reason: "letter " + l.String() + " is plugged twice",
				})
			}
			used[l] = true
		}
	}

	if err := s.Stepping.Validate(); err != nil {
		c.Append(field("Stepping", err))
	}

	return c.Err()
}

// String returns every field, including positions and plugs.
func (s Settings) String() string {
	return s.format(false)
}

// Redacted hides the start positions and the plug pairs.
func (s Settings) Redacted() string {
	return s.format(true)
}

// TypeName returns "Settings".
func (s Settings) TypeName() string {
	return "Settings"
}

// IsZero reports whether s is the empty document.
func (s Settings) IsZero() bool {
	return s.Schema.IsZero() && len(s.Rotors) == 0 && s.Reflector.IsZero() &&
		len(s.Positions) == 0 && len(s.Plugs) == 0 && s.Stepping.IsZero()
}

// Equal reports whether other describes the same machine. Plug order and
// orientation are ignored.
func (s Settings) Equal(other any) bool {
	var o Settings
	switch v := other.(type) {
	case Settings:
		o = v
	case *Settings:
		if v == nil {
			return false
		}
		o = *v
	default:
		return false
	}

	if !s.Schema.Equal(o.Schema) || s.Reflector != o.Reflector || s.Stepping != o.Stepping {
		return false
	}
	if len(s.Rotors) != len(o.Rotors) || len(s.Positions) != len(o.Positions) {
		return false
	}
	for i := range s.Rotors {
		if s.Rotors[i] != o.Rotors[i] {
			return false
		}
	}
	for i := range s.Positions {
		if s.Positions[i] != o.Positions[i] {
			return false
		}
	}

	a, errA := s.Plugboard()
	b, errB := o.Plugboard()
	return errA == nil && errB == nil && a == b
}

// MarshalJSON validates s and encodes it.
func (s Settings) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias Settings
	return json.Marshal(alias(s))
}

// UnmarshalJSON decodes s without validating it; use model.FromJSON for a
// checked decode.
func (s *Settings) UnmarshalJSON(data []byte) error {
	type alias Settings
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = Settings(a)
	return nil
}

// MarshalYAML validates s and encodes it.
func (s Settings) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias Settings
	return alias(s), nil
}

// UnmarshalYAML decodes s without validating it; use model.FromYAML for a
// checked decode.
func (s *Settings) UnmarshalYAML(node *yaml.Node) error {
	type alias Settings
	var a alias
	if err := node.Decode(&a); err != nil {
		return err
	}
	*s = Settings(a)
	return nil
}

func (s Settings) format(redact bool) string {
	var b strings.Builder
	b.WriteString("Settings{")
	if !s.Schema.IsZero() {
		b.WriteString("Schema:" + s.Schema.String() + ", ")
	}

	rotors := make([]string, len(s.Rotors))
	for i, r := range s.Rotors {
		rotors[i] = r.String()
	}
	b.WriteString("Rotors:[" + strings.Join(rotors, " ") + "]")
	b.WriteString(", Reflector:" + s.Reflector.String())

	if redact {
		b.WriteString(", Positions:***")
		b.WriteString(", Plugs:" + strconv.Itoa(len(s.Plugs)) + " pairs")
	} else {
		positions := make([]string, len(s.Positions))
		for i, p := range s.Positions {
			positions[i] = p.String()
		}
		plugs := make([]string, len(s.Plugs))
		for i, p := range s.Plugs {
			plugs[i] = p.String()
		}
		b.WriteString(", Positions:[" + strings.Join(positions, " ") + "]")
		b.WriteString(", Plugs:[" + strings.Join(plugs, " ") + "]")
	}

	b.WriteString(", Stepping:" + s.Stepping.String() + "}")
	return b.String()
}

func field(name string, err error) error {
	return fmt.Errorf("Settings.%s: %w", name, err)
}

// Compile-time check that Settings implements model.Model interface.
var _ model.Model = (*Settings)(nil)
