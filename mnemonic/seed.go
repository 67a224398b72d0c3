package mnemonic

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

// seedRounds is fixed by the mnemonic seed contract.
const seedRounds = 2048

// Seed stretches the mnemonic sentence into the 64-byte seed consumed by
// hierarchical key-tree builders: PBKDF2-HMAC-SHA512 over the space-joined
// sentence with salt "mnemonic"+passphrase, 2048 rounds.
//
// The sentence and passphrase are used verbatim; no Unicode normalization
// is applied, so visually identical inputs in different normal forms derive
// different seeds.
func (m *Mnemonic) Seed(passphrase string) [64]byte {
	var seed [64]byte
	key := pbkdf2.Key(
		[]byte(m.String()),
		[]byte("mnemonic"+passphrase),
		seedRounds, len(seed), sha512.New,
	)
	copy(seed[:], key)
	return seed
}
