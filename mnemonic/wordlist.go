package mnemonic

import (
	"fmt"
	"strings"
	"sync"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// WordCount is the fixed size of every wordlist.
const WordCount = 2048

// wordlist is an immutable 2048-entry list plus a lazily built reverse
// lookup table. The table is keyed by xxhash64 of the word; hits are
// verified against the stored word to rule out collisions.
type wordlist struct {
	words [WordCount]string

	once  sync.Once
	index map[uint64]uint16
}

func (w *wordlist) lookup(word string) (int, bool) {
	w.once.Do(func() {
		w.index = make(map[uint64]uint16, WordCount)
		for i, s := range w.words {
			w.index[xxhash.Sum64String(s)] = uint16(i)
		}
	})
	i, ok := w.index[xxhash.Sum64String(word)]
	if !ok || w.words[i] != word {
		return 0, false
	}
	return int(i), true
}

var registry struct {
	mu    sync.RWMutex
	lists [languageCount]*wordlist
}

// Register installs the wordlist for a language. The list must hold exactly
// 2048 unique, non-empty entries and cannot be replaced once set.
func Register(lang Language, words []string) error {
	if lang < 0 || lang >= languageCount {
		return fmt.Errorf("%w: %s", ErrLanguage, lang)
	}
	if len(words) != WordCount {
		return fmt.Errorf("%w: %s has %d words, want %d", ErrWordlist, lang, len(words), WordCount)
	}
	list := &wordlist{}
	seen := make(map[uint64]int, WordCount)
	for i, s := range words {
		if s == "" {
			return fmt.Errorf("%w: %s word %d is empty", ErrWordlist, lang, i)
		}
		h := xxhash.Sum64String(s)
		if j, dup := seen[h]; dup && words[j] == s {
			return fmt.Errorf("%w: %s duplicates %q", ErrWordlist, lang, s)
		}
		seen[h] = i
		list.words[i] = s
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.lists[lang] != nil {
		return fmt.Errorf("%w: %s already registered", ErrWordlist, lang)
	}
	registry.lists[lang] = list
	return nil
}

// RegisterCompressed installs a wordlist shipped as a zstd frame containing
// the whitespace-separated words.
func RegisterCompressed(lang Language, data []byte) error {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return err
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWordlist, lang, err)
	}
	return Register(lang, strings.Fields(string(raw)))
}

// Registered reports whether the language has a wordlist installed.
func Registered(lang Language) bool { return list(lang) != nil }

func list(lang Language) *wordlist {
	if lang < 0 || lang >= languageCount {
		return nil
	}
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.lists[lang]
}

// WordAt returns the word at index, 0 <= index < 2048.
func (l Language) WordAt(index int) (string, error) {
	w := list(l)
	if w == nil {
		return "", fmt.Errorf("%w: %s not registered", ErrWordlist, l)
	}
	if index < 0 || index >= WordCount {
		return "", fmt.Errorf("%w: index %d", ErrParameter, index)
	}
	return w.words[index], nil
}

// IndexOf reports the index of word in the language's list.
func (l Language) IndexOf(word string) (int, bool) {
	w := list(l)
	if w == nil {
		return 0, false
	}
	return w.lookup(word)
}
