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

// Package plugboard models the reciprocal letter-swapping board that sits
// between the keyboard and the rotor stack.
//
// A Plugboard is always a perfect involution: if A is connected to B then B
// is connected to A, and every unconnected letter maps to itself. The zero
// value is the identity board and is ready to use.
//
// Pairs are written as two letters ("AB"). ParsePair and ParsePairs read the
// forms accepted on the command line and in settings documents; Pair
// implements model.Model so pairs can sit directly in a YAML or JSON list.
//
// # Usage
//
//	pairs, err := plugboard.ParsePairs("AB,CD")
//	if err != nil {
//	    return err
//	}
//	board, err := plugboard.New(pairs...)
//	if err != nil {
//	    return err
//	}
//	out, _ := board.Translate(letter.A) // B
//	fmt.Println(board)                  // AB CD
//	fmt.Println(board.Redacted())       // Plugboard{2 pairs}
//
// A Plugboard is not synchronized. Callers MUST NOT call Connect or
// Disconnect while another goroutine reads the same board.
package plugboard

import (
	"strconv"
	"strings"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model"
	"dirpx.dev/dxenigma/dxcore/model/letter"
)

// Plugboard holds the current set of letter pairs.
//
// Plugboard is a value type. Assigning it copies the whole board, and two
// boards are equal under == exactly when they connect the same pairs.
type Plugboard struct {
	// partner[i] is the index of the letter paired with i, plus one.
	// Zero means i is unpaired.
	partner [letter.Size]uint8
}

// New returns a board with every pair connected in order. A later pair that
// touches a letter of an earlier one replaces it, exactly as Connect does.
//
// Every pair MUST hold two valid letters. On the first invalid pair New
// returns its error and the identity board.
//
// Example usage:
//
//	board, err := plugboard.New(
//	    plugboard.Pair{A: letter.A, B: letter.B},
//	    plugboard.Pair{A: letter.C, B: letter.D},
//	)
func New(pairs ...Pair) (Plugboard, error) {
	var p Plugboard
	for _, pair := range pairs {
		if err := p.Connect(pair.A, pair.B); err != nil {
			return Plugboard{}, err
		}
	}
	return p, nil
}

// Translate returns the partner of l, or l itself when it is unpaired.
//
// Translate is its own inverse: Translate(Translate(l)) == l for every
// letter. It returns a *errors.ValidationError when l is outside A-Z.
func (p Plugboard) Translate(l letter.Letter) (letter.Letter, error) {
	if err := l.Validate(); err != nil {
		return letter.A, err
	}
	return p.partnerOf(l), nil
}

// Connect pairs a with b.
//
// Any pair that already involves a or b is removed first, so after
// Connect(A, B) and Connect(A, C) the board holds A-C and B is unpaired.
// Connecting a letter to itself leaves that letter unpaired.
//
// Both letters MUST be valid; on error the board is left unchanged.
func (p *Plugboard) Connect(a, b letter.Letter) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}

	p.disconnect(a)
	p.disconnect(b)
	if a != b {
		p.partner[a] = uint8(b) + 1
		p.partner[b] = uint8(a) + 1
	}
	return nil
}

// Disconnect removes the pair containing l, if any.
func (p *Plugboard) Disconnect(l letter.Letter) error {
	if err := l.Validate(); err != nil {
		return err
	}
	p.disconnect(l)
	return nil
}

// Connected reports whether l is part of a pair.
func (p Plugboard) Connected(l letter.Letter) bool {
	return l.Valid() && p.partner[l] != 0
}

// Pairs returns the connected pairs in alphabetical order of their first
// letter, each with A < B.
func (p Plugboard) Pairs() []Pair {
	var pairs []Pair
	for i := range p.partner {
		l := letter.Letter(i)
		if other := p.partnerOf(l); other > l {
			pairs = append(pairs, Pair{A: l, B: other})
		}
	}
	return pairs
}

// Len returns the number of connected pairs.
func (p Plugboard) Len() int {
	n := 0
	for _, v := range p.partner {
		if v != 0 {
			n++
		}
	}
	return n / 2
}

// Clone returns an independent copy of p.
func (p Plugboard) Clone() Plugboard {
	return p
}

// Validate checks that the board is an involution without fixed points among
// its connected letters.
func (p Plugboard) Validate() error {
	for i, v := range p.partner {
		if v == 0 {
			continue
		}
		j := int(v) - 1
		if j >= letter.Size || j == i || int(p.partner[j]) != i+1 {
			return &errors.ValidationError{
				Type:   "Plugboard",
				Reason: "pairing is not reciprocal",
				Value:  letter.Letter(i).String(),
			}
		}
	}
	return nil
}

// String returns the pairs separated by spaces, for example "AB CD".
func (p Plugboard) String() string {
	pairs := p.Pairs()
	parts := make([]string, len(pairs))
	for i, pair := range pairs {
		parts[i] = pair.String()
	}
	return strings.Join(parts, " ")
}

// Redacted hides the pairs and reports only how many there are, for example
// "Plugboard{2 pairs}". Loggers SHOULD use Redacted, since the pairs are part
// of the key.
func (p Plugboard) Redacted() string {
	return "Plugboard{" + strconv.Itoa(p.Len()) + " pairs}"
}

func (p Plugboard) partnerOf(l letter.Letter) letter.Letter {
	if v := p.partner[l]; v != 0 {
		return letter.Letter(v - 1)
	}
	return l
}

func (p *Plugboard) disconnect(l letter.Letter) {
	if v := p.partner[l]; v != 0 {
		p.partner[v-1] = 0
		p.partner[l] = 0
	}
}

// Compile-time check that Plugboard can be deep-copied.
var _ model.Cloneable[Plugboard] = Plugboard{}
