// Package bits provides MSB-first bit packing and fixed-width chunking.
//
// Every byte layout in this module is a bit-exact contract: the diagram
// presence bitmaps and the 11-bit mnemonic word indices are both produced
// by these primitives, so their padding behavior must never change.
package bits

import "iter"

// Pack compounds a bit sequence into bytes, MSB-first. The final byte is
// zero-padded, so the output length is ceil(len(bits)/8).
func Pack(bits []bool) []byte {
	out := make([]byte, 0, (len(bits)+7)/8)
	var acc byte
	for i, b := range bits {
		if b {
			acc |= 1 << (7 - i%8)
		}
		if i%8 == 7 {
			out = append(out, acc)
			acc = 0
		}
	}
	if len(bits)%8 != 0 {
		out = append(out, acc)
	}
	return out
}

// Iter yields the bits of data MSB-first within each byte. The sequence
// has exactly 8*len(data) elements and may be ranged over repeatedly.
func Iter(data []byte) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for _, v := range data {
			for m := byte(0x80); m != 0; m >>= 1 {
				if !yield(v&m != 0) {
					return
				}
			}
		}
	}
}

// Chunk slides a window across data and extracts successive width-bit
// values, MSB-first. The tail of the stream is zero-padded with width-1
// bits, so the result has floor((8*len(data)+width-1)/width) entries.
// width must be in [1,16].
func Chunk(data []byte, width int) []uint16 {
	if width < 1 || width > 16 {
		panic("bits: chunk width out of range")
	}
	n := (len(data)*8 + width - 1) / width
	out := make([]uint16, 0, n)
	var acc uint32
	var have, pos int
	mask := uint32(1)<<width - 1
	for range n {
		for have < width {
			acc <<= 8
			if pos < len(data) {
				acc |= uint32(data[pos])
				pos++
			}
			have += 8
		}
		out = append(out, uint16(acc>>(have-width)&mask))
		have -= width
		acc &= uint32(1)<<have - 1
	}
	return out
}

// Join is the inverse of Chunk: it concatenates the low width bits of each
// value MSB-first and zero-pads the final byte. The output length is
// ceil(len(values)*width/8).
func Join(values []uint16, width int) []byte {
	if width < 1 || width > 16 {
		panic("bits: join width out of range")
	}
	out := make([]byte, 0, (len(values)*width+7)/8)
	var acc uint32
	var have int
	mask := uint32(1)<<width - 1
	for _, v := range values {
		acc = acc<<width | uint32(v)&mask
		have += width
		for have >= 8 {
			out = append(out, byte(acc>>(have-8)))
			have -= 8
			acc &= uint32(1)<<have - 1
		}
	}
	if have > 0 {
		out = append(out, byte(acc<<(8-have)))
	}
	return out
}
