// Package diagram encodes user-chosen secrets placed on a 7x7 grid into
// compact self-checking byte strings, and derives 32 bytes of entropy from
// them. Three fixed layouts exist: Simple (one character per cell), Complex
// (a short string per cell) and Animate (an ordered sequence of character
// grids). The byte layouts are bit-exact interoperability contracts.
package diagram

import "crypto/sha256"

// Grid dimensions. All layouts share the fixed 7x7 shape.
const (
	Rows = 7
	Cols = 7
)

// Each indices byte keeps column presence in its low 7 bits; bit 7 is
// reserved for layout version and end-of-sequence markers.
const (
	indicesAll  = 0b0111_1111
	versionMask = 0b1000_0000
)

// colMask returns the presence bit for a column inside a row byte.
func colMask(col int) byte { return 1 << (6 - col) }

// Frame is a 7x7 grid of optional characters. The zero value is empty.
type Frame struct {
	chars [Rows][Cols]rune
	used  [Rows][Cols]bool
}

// Set places ch at (row, col). Setting a cell twice overwrites it.
func (f *Frame) Set(row, col int, ch rune) {
	f.chars[row][col] = ch
	f.used[row][col] = true
}

// Clear removes the value at (row, col).
func (f *Frame) Clear(row, col int) {
	f.chars[row][col] = 0
	f.used[row][col] = false
}

// At reports the value at (row, col) and whether the cell is populated.
func (f *Frame) At(row, col int) (rune, bool) {
	return f.chars[row][col], f.used[row][col]
}

// IsEmpty reports whether no cell is populated.
func (f *Frame) IsEmpty() bool {
	for row := range Rows {
		for col := range Cols {
			if f.used[row][col] {
				return false
			}
		}
	}
	return true
}

// Indices returns the populated (row, col) positions in row-major order.
func (f *Frame) Indices() [][2]int {
	var out [][2]int
	for row := range Rows {
		for col := range Cols {
			if f.used[row][col] {
				out = append(out, [2]int{row, col})
			}
		}
	}
	return out
}

// walk visits populated cells in the shared encode traversal: columns 6..0,
// rows 6..0 within each column. Writing order is usually left to right, top
// to bottom; the stored order is deliberately decorrelated from it.
func (f *Frame) walk(visit func(row, col int, ch rune)) {
	for col := Cols - 1; col >= 0; col-- {
		for row := Rows - 1; row >= 0; row-- {
			if f.used[row][col] {
				visit(row, col, f.chars[row][col])
			}
		}
	}
}

// indicesBlock builds the 7 presence bytes for the frame, markers cleared.
func (f *Frame) indicesBlock() [Rows]byte {
	var block [Rows]byte
	f.walk(func(row, col int, _ rune) {
		block[row] |= colMask(col)
	})
	return block
}

// checkByte is the self-check for every layout: the first byte of the
// SHA-256 digest over all preceding bytes.
func checkByte(data []byte) byte {
	sum := sha256.Sum256(data)
	return sum[0]
}

// splitChecked verifies and strips the trailing checksum byte.
func splitChecked(data []byte) ([]byte, error) {
	if len(data) < 1 {
		return nil, ErrSize
	}
	body, check := data[:len(data)-1], data[len(data)-1]
	if checkByte(body) != check {
		return nil, ErrChecksum
	}
	return body, nil
}
