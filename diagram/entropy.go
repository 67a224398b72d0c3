package diagram

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// Warp derivation parameters. These pin the derivation formula: changing
// any of them changes every derived key, so they are constants rather than
// options. A future formula revision must be a new exported function, not a
// parameter tweak.
const (
	scryptN = 1 << 18
	scryptR = 8
	scryptP = 1

	pbkdf2Rounds = 65536
)

// Domain-separation suffixes for the two derivations. Appended, not
// prepended, to the otherwise identical secret/salt inputs.
const (
	tagScrypt = 0x01
	tagPBKDF2 = 0x02
)

// DeriveEntropy turns an encoded secret and a salt into 32 bytes of
// entropy by XOR-combining a memory-hard and an iteration-hard derivation:
//
//	S1 = scrypt(secret||0x01, salt||0x01, N=2^18, r=8, p=1)
//	S2 = PBKDF2-HMAC-SHA256(secret||0x02, salt||0x02, 65536 rounds)
//
// Compromise of either primitive alone does not reveal the result. The
// scheme follows the warp wallet construction.
func DeriveEntropy(secret, salt []byte) ([32]byte, error) {
	var out [32]byte

	s1, err := scrypt.Key(
		append(append([]byte{}, secret...), tagScrypt),
		append(append([]byte{}, salt...), tagScrypt),
		scryptN, scryptR, scryptP, len(out),
	)
	if err != nil {
		return out, err
	}
	s2 := pbkdf2.Key(
		append(append([]byte{}, secret...), tagPBKDF2),
		append(append([]byte{}, salt...), tagPBKDF2),
		pbkdf2Rounds, len(out), sha256.New,
	)

	for i := range out {
		out[i] = s1[i] ^ s2[i]
	}
	return out, nil
}
