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

// Package machine wires a plugboard, three rotors and a reflector into a
// working cipher machine.
//
// Each EncryptChar call first advances the rotors and then sends the letter
// through nine substitution stages:
//
//	plugboard -> rotor1 -> rotor2 -> rotor3 -> reflector
//	          -> rotor3 -> rotor2 -> rotor1 -> plugboard
//
// rotor1 is the fastest (rightmost) rotor. Because the reflector is an
// involution without fixed points, two machines built from the same settings
// turn ciphertext back into plaintext, and no letter ever encrypts to itself.
//
// A Machine is not safe for concurrent use. Independent machines, including
// clones, share only the immutable reflector and may run in parallel.
//
// # Stepping
//
// Before every letter rotor1 steps. In the default model.SingleCarry mode a
// rotor whose Rotate reports a carry steps its left neighbour, like an
// odometer. model.DoubleStep adds the ratchet anomaly of the historical
// machine: when rotor2 is one step before its notch it moves again on the
// next key press and takes rotor3 with it.
//
// # Usage
//
//	m, err := machine.New(rotor.I, rotor.II, rotor.III, reflector.A, 'A', 'A', 'A')
//	if err != nil {
//	    return err
//	}
//	if err := m.SetPlugs('A', 'B'); err != nil {
//	    return err
//	}
//	if err := m.SetPlugs('C', 'D'); err != nil {
//	    return err
//	}
//	out, err := m.EncryptString("HELLOWORLD") // LZFACEMZWL
//
// Machines described by a settings document are built with NewFromSettings:
//
//	s, err := settings.Load("machine.yaml")
//	if err != nil {
//	    return err
//	}
//	m, err := machine.NewFromSettings(s, machine.WithLogger(logger))
//
// Every argument error returned by this package wraps
// errors.ErrInvalidArgument and is an *errors.ArgumentError naming the
// operation and the offending argument.
package machine

import (
	"log/slog"
	"strconv"
	"strings"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model"
	"dirpx.dev/dxenigma/dxcore/model/letter"
	"dirpx.dev/dxenigma/dxcore/model/plugboard"
	"dirpx.dev/dxenigma/dxcore/model/reflector"
	"dirpx.dev/dxenigma/dxcore/model/rotor"
	"dirpx.dev/dxenigma/dxcore/model/settings"
)

// Machine is a configured three-rotor cipher machine.
//
// The zero value is not usable. Construct machines with New or
// NewFromSettings. Callers MUST NOT share one Machine between goroutines
// without their own synchronization; Clone gives each goroutine its own.
type Machine struct {
	plugboard plugboard.Plugboard
	rotor1    rotor.Rotor
	rotor2    rotor.Rotor
	rotor3    rotor.Rotor
	reflector *reflector.Reflector
	stepping  model.Stepping
	logger    *slog.Logger
}

// Option configures a Machine at construction time. Options are applied in
// order, so a later option wins over an earlier one.
type Option func(*Machine)

// WithStepping selects the stepping mode. The default is model.SingleCarry.
func WithStepping(s model.Stepping) Option {
	return func(m *Machine) {
		m.stepping = s
	}
}

// WithLogger sets the logger used for debug events. A nil logger keeps the
// default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// New builds a machine from three rotor types (fastest first), a reflector
// type and the three rotor start positions. Positions are letters in either
// case. The plugboard starts empty.
//
// On any invalid argument New returns nil and an error matching
// errors.ErrInvalidArgument. The *errors.ArgumentError names the argument:
// "rotor1".."rotor3", "position1".."position3", "reflector" or "stepping".
// Positions MUST be ASCII letters; 'ä', 'ı' and the like are rejected.
//
// Example usage:
//
//	m, err := machine.New(rotor.III, rotor.II, rotor.I, reflector.B, 'U', 'D', 'A',
//	    machine.WithStepping(model.DoubleStep))
//	if err != nil {
//	    return fmt.Errorf("build machine: %w", err)
//	}
func New(r1, r2, r3 rotor.Type, refl reflector.Type, p1, p2, p3 rune, opts ...Option) (*Machine, error) {
	const op = "New"

	types := [...]rotor.Type{r1, r2, r3}
	positions := [...]rune{p1, p2, p3}
	var rotors [3]rotor.Rotor

	for i := range types {
		offset, err := letter.Parse(positions[i])
		if err != nil {
			return nil, argError(op, "position"+strconv.Itoa(i+1), string(positions[i]), err)
		}
		r, err := rotor.New(types[i], offset)
		if err != nil {
			return nil, argError(op, "rotor"+strconv.Itoa(i+1), types[i].String(), err)
		}
		rotors[i] = r
	}

	ref, err := reflector.For(refl)
	if err != nil {
		return nil, argError(op, "reflector", refl.String(), err)
	}

	m := &Machine{
		rotor1:    rotors[0],
		rotor2:    rotors[1],
		rotor3:    rotors[2],
		reflector: ref,
		stepping:  model.SingleCarry,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.stepping.Validate(); err != nil {
		return nil, argError(op, "stepping", m.stepping.String(), err)
	}

	m.logger.Debug("machine created",
		"rotors", []string{r1.String(), r2.String(), r3.String()},
		"reflector", refl.String(),
		"stepping", m.stepping.String(),
	)
	return m, nil
}

// NewFromSettings validates s and builds the machine it describes,
// including its plug pairs and stepping mode. Options are applied after the
// settings, so WithStepping overrides s.Stepping.
//
// Every problem in s is reported at once: the returned *errors.ArgumentError
// has Arg "settings" and wraps the validation error collected by
// settings.Settings.Validate. The redacted settings, not the key, appear in
// the error text.
func NewFromSettings(s settings.Settings, opts ...Option) (*Machine, error) {
	if err := s.Validate(); err != nil {
		return nil, argError("NewFromSettings", "settings", s.Redacted(), err)
	}

	opts = append([]Option{WithStepping(s.Stepping)}, opts...)
	m, err := New(
		s.Rotors[0], s.Rotors[1], s.Rotors[2],
		s.Reflector,
		s.Positions[0].Rune(), s.Positions[1].Rune(), s.Positions[2].Rune(),
		opts...,
	)
	if err != nil {
		return nil, err
	}

	pb, err := s.Plugboard()
	if err != nil {
		return nil, argError("NewFromSettings", "plugs", strconv.Itoa(len(s.Plugs))+" pairs", err)
	}
	m.plugboard = pb
	m.logger.Debug("plugboard configured", "pairs", pb.Len())
	return m, nil
}

// Clone returns an independent machine in the same state as m. Plugboard
// and rotors are copied; the reflector and logger are shared.
//
// A clone MAY be handed to another goroutine. Encrypting with the clone
// never moves the rotors of m, and vice versa.
//
// Example usage:
//
//	receiver := sender.Clone()
//	cipher, _ := sender.EncryptString("HELLO")
//	plain, _ := receiver.EncryptString(cipher) // HELLO
func (m *Machine) Clone() *Machine {
	c := *m
	c.plugboard = m.plugboard.Clone()
	c.rotor1 = m.rotor1.Clone()
	c.rotor2 = m.rotor2.Clone()
	c.rotor3 = m.rotor3.Clone()
	return &c
}

// SetPlugs connects port1 and port2 on the plugboard. Both ports are
// letters in either case. Any existing pair involving either port is
// removed first; connecting a port to itself unplugs it.
//
// If either port is invalid the plugboard is left unchanged.
func (m *Machine) SetPlugs(port1, port2 rune) error {
	const op = "SetPlugs"

	a, err := letter.Parse(port1)
	if err != nil {
		return argError(op, "port1", string(port1), err)
	}
	b, err := letter.Parse(port2)
	if err != nil {
		return argError(op, "port2", string(port2), err)
	}
	if err := m.plugboard.Connect(a, b); err != nil {
		return argError(op, "ports", string(port1)+string(port2), err)
	}

	m.logger.Debug("plugboard changed", "pairs", m.plugboard.Len())
	return nil
}

// EncryptChar advances the rotors and returns the substitution of c as an
// upper-case letter. Lower-case input is accepted.
//
// The result is never c itself (compared case-insensitively), and feeding
// the result into a machine in the same starting state returns c.
//
// If c is not one of the 26 Latin letters, EncryptChar returns an error
// matching errors.ErrInvalidArgument and the rotors do not move.
func (m *Machine) EncryptChar(c rune) (rune, error) {
	l, err := letter.Parse(c)
	if err != nil {
		return 0, argError("EncryptChar", "c", string(c), err)
	}
	return m.encrypt(l).Rune(), nil
}

// EncryptString encrypts s one rune at a time.
//
// It stops at the first rune that is not a letter and returns an error
// naming its index ("text[3]"). On error the output is empty, but letters
// before that rune have already advanced the rotors; there is no rollback.
// Callers that need all-or-nothing behaviour SHOULD encrypt with a Clone
// and keep it only on success.
//
// Whitespace is not skipped. The CLI strips it before calling
// EncryptString.
func (m *Machine) EncryptString(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for _, c := range s {
		l, err := letter.Parse(c)
		if err != nil {
			return "", argError("EncryptString", "text["+strconv.Itoa(i)+"]", string(c), err)
		}
		b.WriteRune(m.encrypt(l).Rune())
		i++
	}
	return b.String(), nil
}

// Positions returns the current rotor offsets, fastest rotor first.
func (m *Machine) Positions() [3]letter.Letter {
	return [3]letter.Letter{m.rotor1.Offset(), m.rotor2.Offset(), m.rotor3.Offset()}
}

// Rotors returns the rotor types, fastest rotor first.
func (m *Machine) Rotors() [3]rotor.Type {
	return [3]rotor.Type{m.rotor1.Type(), m.rotor2.Type(), m.rotor3.Type()}
}

// Reflector returns the shared reflector.
func (m *Machine) Reflector() *reflector.Reflector {
	return m.reflector
}

// Plugboard returns a copy of the current plugboard. Changing the copy does
// not affect m; use SetPlugs for that.
func (m *Machine) Plugboard() plugboard.Plugboard {
	return m.plugboard.Clone()
}

// Stepping returns the stepping mode.
func (m *Machine) Stepping() model.Stepping {
	return m.stepping
}

// encrypt runs one validated letter through the machine.
func (m *Machine) encrypt(l letter.Letter) letter.Letter {
	m.step()

	// Every stage is total over valid letters, so the errors below cannot
	// occur once l has been parsed.
	l, _ = m.plugboard.Translate(l)
	l, _ = m.rotor1.Forward(l)
	l, _ = m.rotor2.Forward(l)
	l, _ = m.rotor3.Forward(l)
	l, _ = m.reflector.Reflect(l)
	l, _ = m.rotor3.Backward(l)
	l, _ = m.rotor2.Backward(l)
	l, _ = m.rotor1.Backward(l)
	l, _ = m.plugboard.Translate(l)
	return l
}

func (m *Machine) step() {
	if m.stepping == model.DoubleStep {
		middle := m.rotor2.AtTurnover()
		carry := m.rotor1.Rotate()
		switch {
		case middle:
			m.rotor2.Rotate()
			m.rotor3.Rotate()
		case carry:
			if m.rotor2.Rotate() {
				m.rotor3.Rotate()
			}
		}
		return
	}

	if m.rotor1.Rotate() {
		if m.rotor2.Rotate() {
			m.rotor3.Rotate()
		}
	}
}

func argError(op, arg, value string, err error) error {
	return &errors.ArgumentError{Op: op, Arg: arg, Value: value, Err: err}
}
