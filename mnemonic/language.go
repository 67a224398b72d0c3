// Package mnemonic converts raw entropy to and from checksummed word
// sequences across ten languages, and derives the 64-byte seed consumed by
// hierarchical key-tree builders.
//
// Wordlist data is not bundled: each 2048-entry list is registered by the
// caller (typically a data package) before use. See Register and
// RegisterCompressed.
package mnemonic

import (
	"fmt"
	"strings"
)

// Language identifies a fixed 2048-entry wordlist. Values follow the BIP85
// registry ordering.
type Language int

const (
	English            Language = 0
	Japanese           Language = 1
	Korean             Language = 2
	Spanish            Language = 3
	ChineseSimplified  Language = 4
	ChineseTraditional Language = 5
	French             Language = 6
	Italian            Language = 7
	Czech              Language = 8
	Portuguese         Language = 9
)

const languageCount = 10

// Languages lists all supported languages in registry order.
func Languages() [languageCount]Language {
	return [languageCount]Language{
		English, Japanese, Korean, Spanish,
		ChineseSimplified, ChineseTraditional,
		French, Italian, Czech, Portuguese,
	}
}

var languageNames = map[Language]string{
	English:            "english",
	Japanese:           "japanese",
	Korean:             "korean",
	Spanish:            "spanish",
	ChineseSimplified:  "chinese_simplified",
	ChineseTraditional: "chinese_traditional",
	French:             "french",
	Italian:            "italian",
	Czech:              "czech",
	Portuguese:         "portuguese",
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return fmt.Sprintf("language(%d)", int(l))
}

// ParseLanguage resolves a case-insensitive language name.
func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "chinese" {
		return ChineseSimplified, nil
	}
	for lang, name := range languageNames {
		if s == name {
			return lang, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrLanguage, s)
}

// latin lists share the ASCII script and can only be told apart by
// membership and checksum.
var latinLanguages = []Language{English, Italian, Czech, Portuguese, French, Spanish}

// detect returns the candidate languages for a single word, judged by the
// Unicode block of its leading scalar and then narrowed by membership.
// Korean lists are stored in decomposed form, so their words lead with
// conjoining jamo.
func detect(word string) []Language {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil
	}
	var candidates []Language
	switch ch := runes[0]; {
	case ch >= 0x1100 && ch <= 0x11ff:
		candidates = []Language{Korean}
	case ch >= 0x3040 && ch <= 0x309f:
		candidates = []Language{Japanese}
	case ch >= 0x4e00 && ch <= 0x9f9f:
		candidates = []Language{ChineseSimplified, ChineseTraditional}
	case ch < 0x80:
		candidates = latinLanguages
	default:
		// accented latin scripts
		candidates = []Language{French, Spanish}
	}
	matched := candidates[:0:0]
	for _, lang := range candidates {
		if _, ok := lang.IndexOf(word); ok {
			matched = append(matched, lang)
		}
	}
	return matched
}
