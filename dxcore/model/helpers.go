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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// Checkable is the part of the Model contract needed to validate a value and
// name it in an error message. Every Model value (not only its pointer)
// satisfies Checkable, so ValidateAll accepts plain slices such as
// []rotor.Type.
type Checkable interface {
	Validatable
	Identifiable
}

// ValidateAll validates every element of models and returns all failures
// combined into a single error, not just the first one.
//
// Each failure is wrapped with the element's index and type name:
//
//	"model[2] (RotorType): dxenigma: invalid RotorType: ..."
//
// The wrapped errors are collected with rxmerr.Collector, so the combined
// error mentions every invalid element. An empty or nil slice is valid and
// ValidateAll returns nil.
//
// Callers that validate a composite document (for example settings.Settings)
// SHOULD use ValidateAll for each homogeneous slice field and append its
// result to their own collector, so that one Validate call reports every
// problem in the document.
//
// Example usage:
//
//	if err := ValidateAll(s.Rotors); err != nil {
//	    c.Append(fmt.Errorf("Settings.Rotors: %w", err))
//	}
func ValidateAll[T Checkable](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// SafeString returns the log-safe representation of m.
//
// When unsafe is false SafeString returns m.Redacted(), which MUST NOT
// contain key material (rotor start positions, plug pairs). When unsafe is
// true it returns m.String(). Production logging SHOULD always pass false.
//
// Example usage:
//
//	logger.Info("machine settings", "settings", SafeString(s, false))
func SafeString[T Loggable](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// JSONEncodable is the subset of Model needed to encode a checked value as
// JSON.
type JSONEncodable interface {
	Checkable
	json.Marshaler
}

// YAMLEncodable is the subset of Model needed to encode a checked value as
// YAML.
type YAMLEncodable interface {
	Checkable
	yaml.Marshaler
}

// ToJSON validates m and then encodes it with json.Marshal.
//
// Validation runs first so that an invalid value never reaches the output.
// The returned error wraps the validation failure and names the type:
//
//	"cannot marshal invalid Settings: ..."
func ToJSON[T JSONEncodable](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates m and then encodes it with yaml.Marshal.
//
// It follows the same rules as ToJSON.
func ToYAML[T YAMLEncodable](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON decodes data into m and validates the result.
//
// PT is the pointer type of the model, which carries the Unmarshal methods;
// callers pass the address of a value and both type parameters are
// inferred:
//
//	var s settings.Settings
//	if err := FromJSON(data, &s); err != nil {
//	    return err
//	}
//
// When FromJSON returns an error the contents of *m are undefined and MUST
// NOT be used.
func FromJSON[T any, PT interface {
	*T
	Model
}](data []byte, m PT) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML decodes data into m and validates the result.
//
// It follows the same rules as FromJSON.
func FromYAML[T any, PT interface {
	*T
	Model
}](data []byte, m PT) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}
