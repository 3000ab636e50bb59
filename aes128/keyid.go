package aes128

import (
	"git.gammaspectra.live/P2Pool/aes128/types"
	"git.gammaspectra.live/P2Pool/sha3"
)

var keyIdDomain = []byte("aes128_key_id")

// KeyID Keccak-256 identifier of key. Lets caches and logs refer to a key without holding it.
func KeyID(key *types.Key) (id types.Hash) {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(keyIdDomain)
	_, _ = h.Write(key[:])
	h.Sum(id[:0])
	return id
}
