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

// Package rotor models the interchangeable cipher rotors: the constant
// wiring table of each rotor Type and the Rotor instance that carries a
// mutable rotational offset.
//
// A Rotor is a plain value. Assigning it or calling Clone produces an
// independent rotor; the wiring tables it reads are package constants and
// are never written after package initialization, so any number of rotors
// MAY read them concurrently.
//
// A single Rotor value is not synchronized. Callers that share one rotor
// between goroutines MUST guard Rotate with their own lock; Forward,
// Backward and AtTurnover only read the offset.
//
// # Usage
//
// Rotors are normally owned by a machine, which steps them and routes the
// signal through them in order:
//
//	r, err := rotor.New(rotor.III, letter.A)
//	if err != nil {
//	    return err
//	}
//	out, _ := r.Forward(letter.A) // B
//	back, _ := r.Backward(out)    // A
//	if r.Rotate() {
//	    // the neighbouring rotor steps as well
//	}
//
// Wiring tables, notches and names live on Type; see Types for the set of
// rotors this package knows.
package rotor

import (
	"dirpx.dev/dxenigma/dxcore/model"
	"dirpx.dev/dxenigma/dxcore/model/letter"
)

// Rotor is one rotor in a machine: a wiring Type plus its current offset.
//
// The offset is the letter shown in the rotor window. It shifts the contacts
// against the fixed wiring, so the same Type at a different offset realizes
// a different permutation of the alphabet.
//
// The zero value is not usable: its Type is unset and every method that
// touches the wiring returns a *errors.ValidationError. Construct rotors
// with New.
type Rotor struct {
	typ    Type
	offset letter.Letter
}

// New returns a rotor of type t positioned at offset.
//
// Both arguments MUST be valid. New returns the *errors.ValidationError of
// the first invalid argument and a zero Rotor in that case, and callers MUST
// NOT use the returned rotor when err is non-nil.
//
// Example usage:
//
//	r, err := rotor.New(rotor.I, letter.Q)
//	if err != nil {
//	    return fmt.Errorf("rotor 1: %w", err)
//	}
func New(t Type, offset letter.Letter) (Rotor, error) {
	if err := t.Validate(); err != nil {
		return Rotor{}, err
	}
	if err := offset.Validate(); err != nil {
		return Rotor{}, err
	}
	return Rotor{typ: t, offset: offset}, nil
}

// Type returns the wiring type of r.
func (r Rotor) Type() Type {
	return r.typ
}

// Offset returns the current rotational offset of r.
func (r Rotor) Offset() letter.Letter {
	return r.offset
}

// Forward passes l through the rotor from the entry side towards the
// reflector.
//
// The input is shifted by the offset onto the wiring table, substituted,
// and shifted back:
//
//	out = wiring[(l + offset) mod 26] - offset   (floor modulus)
//
// Forward does not move the rotor. It returns a *errors.ValidationError when
// r was not built by New or l is outside A-Z.
//
// Example usage:
//
//	r, _ := rotor.New(rotor.I, letter.B)
//	out, _ := r.Forward(letter.A) // J
func (r Rotor) Forward(l letter.Letter) (letter.Letter, error) {
	if err := r.check(l); err != nil {
		return letter.A, err
	}
	wired := tables[r.typ].forward[l.Shift(r.offset.Index())]
	return wired.Shift(-r.offset.Index()), nil
}

// Backward passes l through the rotor on the way back from the reflector,
// using the inverse permutation.
//
// For every type, offset and letter l, Backward(Forward(l)) == l. The error
// contract is the same as Forward's.
func (r Rotor) Backward(l letter.Letter) (letter.Letter, error) {
	if err := r.check(l); err != nil {
		return letter.A, err
	}
	contact := tables[r.typ].backward[l.Shift(r.offset.Index())]
	return contact.Shift(-r.offset.Index()), nil
}

// Rotate advances the offset by one letter (Z wraps to A) and reports
// whether the new offset equals the notch of the rotor type. A true result
// is a carry: the caller SHOULD step the next rotor in the stack.
//
// Rotate is the only method that mutates r and MUST NOT be called
// concurrently with any other method on the same rotor.
func (r *Rotor) Rotate() bool {
	r.offset = r.offset.Next()
	return r.offset == r.typ.Notch()
}

// AtTurnover reports whether the next Rotate will return true. Machines use
// it to decide on a double step before any rotor moves.
func (r Rotor) AtTurnover() bool {
	return r.offset.Next() == r.typ.Notch()
}

// Clone returns an independent copy of r.
func (r Rotor) Clone() Rotor {
	return r
}

// Validate checks the type and offset of r.
func (r Rotor) Validate() error {
	if err := r.typ.Validate(); err != nil {
		return err
	}
	return r.offset.Validate()
}

// String returns "Rotor{Type:III, Offset:Q}".
func (r Rotor) String() string {
	return "Rotor{Type:" + r.typ.String() + ", Offset:" + r.offset.String() + "}"
}

func (r Rotor) check(l letter.Letter) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return l.Validate()
}

// Compile-time check that Rotor can be deep-copied.
var _ model.Cloneable[Rotor] = Rotor{}
