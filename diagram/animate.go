package diagram

import (
	"fmt"
	"unicode/utf8"
)

// Animate holds an ordered sequence of character grids played back as
// frames.
//
// Layout: [UTF-8 char pool][one 7-byte indices block per frame][1 checksum].
// Blocks are stored with the chronologically last frame first; every block
// sets the top bit of its second byte (animate marker) and the block of the
// final frame also sets the top bit of its first byte (end-of-sequence
// marker). The char pool is ordered by the same reverse-frame walk.
type Animate struct {
	Frames []Frame
}

// frame block marker bits
const (
	animateRow = 1 // indices row carrying the animate marker
	endRow     = 0 // indices row carrying the end-of-sequence marker
)

// IsEmpty reports whether the sequence has no populated cell at all.
func (d *Animate) IsEmpty() bool {
	for i := range d.Frames {
		if !d.Frames[i].IsEmpty() {
			return false
		}
	}
	return true
}

// Encode serializes the frame sequence into its self-checking byte layout.
func (d *Animate) Encode() ([]byte, error) {
	if len(d.Frames) == 0 || d.IsEmpty() {
		return nil, ErrEmpty
	}
	var chars []rune
	blocks := make([][Rows]byte, 0, len(d.Frames))
	for i := len(d.Frames) - 1; i >= 0; i-- {
		f := &d.Frames[i]
		block := f.indicesBlock()
		f.walk(func(_, _ int, ch rune) {
			chars = append(chars, ch)
		})
		block[animateRow] |= versionMask
		blocks = append(blocks, block)
	}
	blocks[0][endRow] |= versionMask

	secret := []byte(string(chars))
	for _, block := range blocks {
		secret = append(secret, block[:]...)
	}
	return append(secret, checkByte(secret)), nil
}

// DecodeAnimate rebuilds an Animate diagram from encoded bytes.
func DecodeAnimate(data []byte) (*Animate, error) {
	// one char, one frame block, checksum at minimum
	if len(data) <= Rows+1 {
		return nil, fmt.Errorf("%w: secret too short", ErrSize)
	}
	body, err := splitChecked(data)
	if err != nil {
		return nil, err
	}

	// Scan 7-byte blocks backwards from the tail until the end-marked block
	// is found; everything before it is the shared char pool.
	count := 0
	start := len(body)
	for {
		start -= Rows
		if start < 0 {
			return nil, fmt.Errorf("%w: end frame not found", ErrVersion)
		}
		block := body[start : start+Rows]
		if block[animateRow]&versionMask == 0 {
			return nil, ErrVersion
		}
		count++
		if block[endRow]&versionMask != 0 {
			break
		}
	}
	pool := body[:start]
	if !utf8.Valid(pool) {
		return nil, ErrUTF8
	}
	items := []rune(string(pool))

	// Blocks in storage order run from the last frame to the first; the
	// char pool runs in the same direction.
	frames := make([]Frame, count)
	pos := 0
	for i := range count {
		block := body[start+i*Rows : start+(i+1)*Rows]
		f := &frames[count-1-i]
		for col := Cols - 1; col >= 0; col-- {
			for row := Rows - 1; row >= 0; row-- {
				if block[row]&indicesAll&colMask(col) == 0 {
					continue
				}
				if pos >= len(items) {
					return nil, fmt.Errorf("%w: items len invalid", ErrParameter)
				}
				f.Set(row, col, items[pos])
				pos++
			}
		}
	}
	if pos != len(items) {
		return nil, fmt.Errorf("%w: items len invalid", ErrParameter)
	}
	d := &Animate{Frames: frames}
	if d.IsEmpty() {
		return nil, ErrEmpty
	}
	return d, nil
}

// Entropy encodes the sequence and derives 32 bytes of entropy from it.
func (d *Animate) Entropy(salt []byte) ([32]byte, error) {
	secret, err := d.Encode()
	if err != nil {
		return [32]byte{}, err
	}
	return DeriveEntropy(secret, salt)
}
