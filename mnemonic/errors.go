package mnemonic

import "errors"

var (
	// ErrSize is returned for entropy or word counts outside the fixed table.
	ErrSize = errors.New("invalid mnemonic size")
	// ErrLanguage is returned for an unknown language or a word outside
	// every candidate wordlist.
	ErrLanguage = errors.New("invalid mnemonic language")
	// ErrAmbiguous is returned when several languages validate and no
	// collapse rule applies.
	ErrAmbiguous = errors.New("inconclusive mnemonic languages")
	// ErrChecksum is returned when no candidate language's checksum matches.
	ErrChecksum = errors.New("invalid mnemonic checksum")
	// ErrWordlist is returned for invalid or missing wordlist registrations.
	ErrWordlist = errors.New("invalid wordlist")
	// ErrParameter is returned for out-of-range arguments.
	ErrParameter = errors.New("invalid parameter")
)
