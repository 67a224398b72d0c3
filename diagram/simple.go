package diagram

import (
	"fmt"
	"unicode/utf8"
)

// Simple holds one arbitrary character per populated cell.
//
// Layout: [UTF-8 chars][7 indices bytes][1 checksum]. The top bit of every
// indices byte must be zero; a set bit marks another layout.
type Simple struct {
	Frame
}

// NewSimple builds a diagram from parallel value/position slices.
func NewSimple(values []rune, positions [][2]int) (*Simple, error) {
	if len(values) == 0 || len(values) != len(positions) {
		return nil, fmt.Errorf("%w: positions len should equal values len", ErrParameter)
	}
	var d Simple
	for i, pos := range positions {
		row, col := pos[0], pos[1]
		if row < 0 || row >= Rows || col < 0 || col >= Cols {
			return nil, fmt.Errorf("%w: position (%d,%d) out of bounds", ErrParameter, row, col)
		}
		d.Set(row, col, values[i])
	}
	return &d, nil
}

// Encode serializes the diagram into its self-checking byte layout.
func (d *Simple) Encode() ([]byte, error) {
	if d.IsEmpty() {
		return nil, ErrEmpty
	}
	var chars []rune
	indices := d.indicesBlock()
	d.walk(func(_, _ int, ch rune) {
		chars = append(chars, ch)
	})

	secret := append([]byte(string(chars)), indices[:]...)
	return append(secret, checkByte(secret)), nil
}

// DecodeSimple rebuilds a Simple diagram from encoded bytes.
func DecodeSimple(data []byte) (*Simple, error) {
	// one char, 7 indices bytes, checksum at minimum
	if len(data) <= Rows+1 {
		return nil, fmt.Errorf("%w: secret too short", ErrSize)
	}
	body, err := splitChecked(data)
	if err != nil {
		return nil, err
	}
	chars, indices := body[:len(body)-Rows], body[len(body)-Rows:]
	for _, v := range indices {
		if v&versionMask != 0 {
			return nil, ErrVersion
		}
	}
	if !utf8.Valid(chars) {
		return nil, ErrUTF8
	}

	items := []rune(string(chars))
	var d Simple
	pos := 0
	for col := Cols - 1; col >= 0; col-- {
		for row := Rows - 1; row >= 0; row-- {
			if indices[row]&colMask(col) == 0 {
				continue
			}
			if pos >= len(items) {
				return nil, fmt.Errorf("%w: items len invalid", ErrParameter)
			}
			d.Set(row, col, items[pos])
			pos++
		}
	}
	if pos != len(items) {
		return nil, fmt.Errorf("%w: items len invalid", ErrParameter)
	}
	return &d, nil
}

// Entropy encodes the diagram and derives 32 bytes of entropy from it.
func (d *Simple) Entropy(salt []byte) ([32]byte, error) {
	secret, err := d.Encode()
	if err != nil {
		return [32]byte{}, err
	}
	return DeriveEntropy(secret, salt)
}
