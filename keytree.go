package gridseed

// KeyTree is the external hierarchical key tree derived from a seed.
// Implementations wrap a BIP32-style library; this module only produces
// the seed material.
type KeyTree interface {
	// DerivePath derives the key material at a derivation path such as
	// "m/44'/0'/0'/0/0".
	DerivePath(path string) ([]byte, error)
}

// KeyTreeBuilder consumes this module's 32-byte entropy or 64-byte seed
// output and builds a key tree from it.
type KeyTreeBuilder interface {
	NewMaster(seed []byte) (KeyTree, error)
}
