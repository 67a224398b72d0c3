package mnemonic

import (
	"crypto/sha256"
	"fmt"
	"slices"
	"strings"

	"github.com/gridseed/gridseed/bits"
)

// ValidSizes are the accepted mnemonic word counts.
var ValidSizes = []int{12, 15, 18, 21, 24}

// Mnemonic is a checksummed word sequence encoding 16–32 bytes of entropy.
type Mnemonic struct {
	words    []string
	language Language
}

// New encodes entropy into a mnemonic. The entropy length must be one of
// 16, 20, 24, 28 or 32 bytes, producing 12, 15, 18, 21 or 24 words.
func New(entropy []byte, lang Language) (*Mnemonic, error) {
	switch len(entropy) {
	case 16, 20, 24, 28, 32:
	default:
		return nil, fmt.Errorf("%w: %d entropy bytes", ErrSize, len(entropy))
	}
	size := len(entropy) / 4 * 3 // word count

	data := append(append([]byte{}, entropy...), checksumByte(entropy, size))
	indices := bits.Chunk(data, 11)[:size]

	words := make([]string, size)
	for i, idx := range indices {
		w, err := lang.WordAt(int(idx))
		if err != nil {
			return nil, err
		}
		words[i] = w
	}
	return &Mnemonic{words: words, language: lang}, nil
}

// Parse validates a whitespace-separated mnemonic sentence, detects its
// language and verifies the embedded checksum.
func Parse(sentence string) (*Mnemonic, error) {
	words := strings.Fields(sentence)
	if !slices.Contains(ValidSizes, len(words)) {
		return nil, fmt.Errorf("%w: %d words", ErrSize, len(words))
	}

	candidates := detectAll(words)
	var survivors []Language
	for _, lang := range candidates {
		indices, err := lang.indices(words)
		if err != nil {
			continue
		}
		if verifyChecksum(indices) == nil {
			survivors = append(survivors, lang)
		}
	}

	switch {
	case len(survivors) == 1:
		return &Mnemonic{words: words, language: survivors[0]}, nil
	case len(survivors) == 0:
		return nil, ErrChecksum
	case collapseChinese(survivors):
		// Simplified and Traditional Chinese lists share entries at equal
		// indices; the shared case resolves to Simplified by policy.
		return &Mnemonic{words: words, language: ChineseSimplified}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrAmbiguous, survivors)
	}
}

// Language reports the mnemonic's wordlist language.
func (m *Mnemonic) Language() Language { return m.language }

// Size reports the word count.
func (m *Mnemonic) Size() int { return len(m.words) }

// Words returns a copy of the word sequence.
func (m *Mnemonic) Words() []string { return slices.Clone(m.words) }

// String joins the words with single spaces.
func (m *Mnemonic) String() string { return strings.Join(m.words, " ") }

// Indices maps the words back to their wordlist positions.
func (m *Mnemonic) Indices() ([]uint16, error) {
	return m.language.indices(m.words)
}

// Entropy recovers the raw entropy the mnemonic encodes.
func (m *Mnemonic) Entropy() ([]byte, error) {
	indices, err := m.Indices()
	if err != nil {
		return nil, err
	}
	data := bits.Join(indices, 11)
	return data[:len(data)-1], nil // drop the checksum byte
}

// checksumByte masks the leading SHA-256 byte to the top size/3 bits.
func checksumByte(entropy []byte, size int) byte {
	sum := sha256.Sum256(entropy)
	mask := byte(0xff) << (8 - size/3)
	return sum[0] & mask
}

// verifyChecksum rebuilds entropy from word indices and compares the
// trailing checksum bits. The tail byte carries the masked checksum
// followed by zero padding, so an exact compare covers both.
func verifyChecksum(indices []uint16) error {
	if !slices.Contains(ValidSizes, len(indices)) {
		return fmt.Errorf("%w: %d words", ErrSize, len(indices))
	}
	data := bits.Join(indices, 11)
	entropy, tail := data[:len(data)-1], data[len(data)-1]
	if checksumByte(entropy, len(indices)) != tail {
		return ErrChecksum
	}
	return nil
}

// detectAll intersects the per-word candidate languages.
func detectAll(words []string) []Language {
	common := detect(words[0])
	for _, w := range words[1:] {
		langs := detect(w)
		common = slices.DeleteFunc(common, func(l Language) bool {
			return !slices.Contains(langs, l)
		})
		if len(common) == 0 {
			break
		}
	}
	return common
}

// collapseChinese reports whether survivors are exactly the two Chinese
// lists.
func collapseChinese(survivors []Language) bool {
	if len(survivors) != 2 {
		return false
	}
	return slices.Contains(survivors, ChineseSimplified) &&
		slices.Contains(survivors, ChineseTraditional)
}

// indices maps words to positions in the language's list.
func (l Language) indices(words []string) ([]uint16, error) {
	out := make([]uint16, len(words))
	for i, w := range words {
		idx, ok := l.IndexOf(w)
		if !ok {
			return nil, fmt.Errorf("%w: %q not in %s", ErrLanguage, w, l)
		}
		out[i] = uint16(idx)
	}
	return out, nil
}
