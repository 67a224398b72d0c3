// Package gridseed turns small visual secrets (characters, strings or
// animated character layouts on a 7x7 grid) into reproducible wallet
// entropy and mnemonic words.
//
// The pipeline is:
//
//	diagram.Simple / diagram.Complex / diagram.Animate
//	        |  Encode (bit-exact, self-checking byte layout)
//	        v
//	diagram.DeriveEntropy(secret, salt)   ->  32-byte entropy
//	        |
//	        v
//	mnemonic.New(entropy, language)       ->  12..24 words
//	mnemonic.(*Mnemonic).Seed(passphrase) ->  64-byte seed
//
// Hierarchical key derivation from the entropy or seed is an external
// concern; see KeyTreeBuilder.
package gridseed
