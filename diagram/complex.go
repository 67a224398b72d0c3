package diagram

import (
	"fmt"
	"math/bits"
	"unicode/utf8"
)

// CellLimit is the maximum number of Unicode scalars per Complex cell.
const CellLimit = 50

// Complex holds a short UTF-8 string per populated cell. Empty strings are
// treated as unset.
//
// Layout: [concatenated strings][one length byte per cell, traversal
// order][7 indices bytes][1 checksum]. The top bit of indices[0] is the
// layout version flag and must be 1.
type Complex struct {
	cells [Rows][Cols]string
}

// NewComplex builds a diagram from parallel value/position slices.
func NewComplex(values []string, positions [][2]int) (*Complex, error) {
	if len(values) == 0 || len(values) != len(positions) {
		return nil, fmt.Errorf("%w: positions len should equal values len", ErrParameter)
	}
	var d Complex
	for i, pos := range positions {
		row, col := pos[0], pos[1]
		if row < 0 || row >= Rows || col < 0 || col >= Cols {
			return nil, fmt.Errorf("%w: position (%d,%d) out of bounds", ErrParameter, row, col)
		}
		d.Set(row, col, values[i])
	}
	return &d, nil
}

// Set places s at (row, col). An empty string clears the cell.
func (d *Complex) Set(row, col int, s string) { d.cells[row][col] = s }

// At reports the string at (row, col) and whether the cell is populated.
func (d *Complex) At(row, col int) (string, bool) {
	s := d.cells[row][col]
	return s, s != ""
}

// IsEmpty reports whether no cell is populated.
func (d *Complex) IsEmpty() bool {
	for row := range Rows {
		for col := range Cols {
			if d.cells[row][col] != "" {
				return false
			}
		}
	}
	return true
}

// Encode serializes the diagram into its self-checking byte layout.
func (d *Complex) Encode() ([]byte, error) {
	if d.IsEmpty() {
		return nil, ErrEmpty
	}
	var pool []byte
	var lens []byte
	var indices [Rows]byte
	for col := Cols - 1; col >= 0; col-- {
		for row := Rows - 1; row >= 0; row-- {
			s := d.cells[row][col]
			if s == "" {
				continue
			}
			if utf8.RuneCountInString(s) > CellLimit {
				return nil, fmt.Errorf("%w: cell (%d,%d)", ErrCellOverflow, row, col)
			}
			// 50 scalars encode to at most 200 bytes, below the length
			// byte ceiling of 255
			pool = append(pool, s...)
			lens = append(lens, byte(len(s)))
			indices[row] |= colMask(col)
		}
	}
	indices[0] |= versionMask

	secret := append(pool, lens...)
	secret = append(secret, indices[:]...)
	return append(secret, checkByte(secret)), nil
}

// DecodeComplex rebuilds a Complex diagram from encoded bytes.
func DecodeComplex(data []byte) (*Complex, error) {
	// one 1-byte cell, its length byte, 7 indices bytes, checksum
	if len(data) < Rows+3 {
		return nil, fmt.Errorf("%w: secret too short", ErrSize)
	}
	body, err := splitChecked(data)
	if err != nil {
		return nil, err
	}
	indices := body[len(body)-Rows:]
	if indices[0]&versionMask == 0 {
		return nil, ErrVersion
	}
	for _, v := range indices[1:] {
		if v&versionMask != 0 {
			return nil, ErrVersion
		}
	}
	n := 0
	for _, v := range indices {
		n += bits.OnesCount8(v & indicesAll)
	}
	if n == 0 {
		return nil, ErrEmpty
	}
	if len(body)-Rows-n < n { // every cell carries at least one byte
		return nil, fmt.Errorf("%w: secret too short", ErrSize)
	}
	lens := body[len(body)-Rows-n : len(body)-Rows]
	pool := body[:len(body)-Rows-n]
	total := 0
	for _, l := range lens {
		if l == 0 {
			return nil, fmt.Errorf("%w: zero length cell", ErrParameter)
		}
		total += int(l)
	}
	if total != len(pool) {
		return nil, fmt.Errorf("%w: lengths do not cover strings", ErrParameter)
	}

	var d Complex
	next := 0
	offset := 0
	for col := Cols - 1; col >= 0; col-- {
		for row := Rows - 1; row >= 0; row-- {
			if indices[row]&colMask(col) == 0 {
				continue
			}
			l := int(lens[next])
			next++
			seg := pool[offset : offset+l]
			offset += l
			if !utf8.Valid(seg) {
				return nil, ErrUTF8
			}
			d.cells[row][col] = string(seg)
		}
	}
	return &d, nil
}

// Entropy encodes the diagram and derives 32 bytes of entropy from it.
func (d *Complex) Entropy(salt []byte) ([32]byte, error) {
	secret, err := d.Encode()
	if err != nil {
		return [32]byte{}, err
	}
	return DeriveEntropy(secret, salt)
}
