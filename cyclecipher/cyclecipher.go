// Package cyclecipher scrambles text with a sequence of partial rotations.
//
// A program is a list of steps. Each step selects the characters at
// offset, offset+interval, offset+2*interval, ... and rotates them in place
// by shift positions. Enciphering runs the steps in order rotating left;
// deciphering runs them in reverse rotating right, which restores the text.
//
// Programs are written as numeric codes, three digits per step ("314202"),
// or derived from a code word ("apple"). This is an obfuscation puzzle and
// offers no cryptographic protection.
package cyclecipher

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCodeLength = errors.New("numeric code length must be a multiple of 3")
	ErrZeroInterval      = errors.New("intervals must be non-zero")
	ErrNegativeOffset    = errors.New("offsets must not be negative")
)

type Step struct {
	Interval int
	Offset   int
	Shift    int
}

type Program []Step

// Parse returns the program for code. Codes made only of ASCII digits are
// read directly; anything else is passed through Derive first. Digits from
// other scripts (fullwidth "１２３" and the like) are not numeric here and
// contribute nothing to a derived code.
func Parse(code string) (Program, error) {
	if !isNumeric(code) {
		code = Derive(code)
	}
	if len(code)%3 != 0 {
		return nil, fmt.Errorf("%w: %d digits", ErrInvalidCodeLength, len(code))
	}
	prog := make(Program, 0, len(code)/3)
	for i := 0; i < len(code); i += 3 {
		step := Step{
			Interval: int(code[i] - '0'),
			Offset:   int(code[i+1] - '0'),
			Shift:    int(code[i+2] - '0'),
		}
		if step.Interval == 0 {
			return nil, fmt.Errorf("%w: step %d", ErrZeroInterval, i/3)
		}
		prog = append(prog, step)
	}
	return prog, nil
}

// String renders the program as a numeric code.
func (p Program) String() string {
	b := make([]byte, 0, len(p)*3)
	for _, s := range p {
		b = append(b, byte('0'+s.Interval), byte('0'+s.Offset), byte('0'+s.Shift))
	}
	return string(b)
}

// Validate reports the first step with a zero or negative interval or a
// negative offset. Programs returned by Parse are always valid.
func (p Program) Validate() error {
	for i, s := range p {
		if s.Interval <= 0 {
			return fmt.Errorf("%w: step %d", ErrZeroInterval, i)
		}
		if s.Offset < 0 {
			return fmt.Errorf("%w: step %d", ErrNegativeOffset, i)
		}
	}
	return nil
}

func (p Program) Encipher(text string) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	runes := []rune(text)
	for _, s := range p {
		s.apply(runes, -s.Shift)
	}
	return string(runes), nil
}

func (p Program) Decipher(text string) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	runes := []rune(text)
	for i := len(p) - 1; i >= 0; i-- {
		p[i].apply(runes, p[i].Shift)
	}
	return string(runes), nil
}

// apply rotates the strided view of runes selected by s. A positive shift
// rotates right, a negative one left.
func (s Step) apply(runes []rune, shift int) {
	if s.Offset >= len(runes) {
		return
	}
	var view []rune
	for i := s.Offset; i < len(runes); i += s.Interval {
		view = append(view, runes[i])
	}
	n := len(view)
	k := ((-shift)%n + n) % n
	for j := range view {
		runes[s.Offset+j*s.Interval] = view[(j+k)%n]
	}
}

func isNumeric(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
