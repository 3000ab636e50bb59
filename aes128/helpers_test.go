package aes128

import (
	"testing"

	"git.gammaspectra.live/P2Pool/aes128/types"
	"git.gammaspectra.live/P2Pool/aes128/utils"
	"github.com/chocolatkey/chacha8"
)

type testVector struct {
	Name       string      `json:"name"`
	Key        types.Key   `json:"key"`
	Plaintext  types.Block `json:"plaintext"`
	Ciphertext types.Block `json:"ciphertext"`
}

func loadTestVectors(t testing.TB) []testVector {
	var vectors []testVector
	if err := utils.ReadJSONFile("testdata/vectors.json", &vectors); err != nil {
		t.Fatal(err)
	}
	if len(vectors) == 0 {
		t.Fatal("no test vectors")
	}
	return vectors
}

// testStream deterministic pseudo-random bytes, so failures reproduce
type testStream struct {
	c *chacha8.Cipher
}

func newTestStream(t testing.TB, seed string) *testStream {
	var key [32]byte
	copy(key[:], seed)
	c, err := chacha8.New(key[:], make([]byte, 12))
	if err != nil {
		t.Fatal(err)
	}
	return &testStream{c: c}
}

func (s *testStream) fill(buf []byte) {
	clear(buf)
	s.c.XORKeyStream(buf, buf)
}

func (s *testStream) key() (k types.Key) {
	s.fill(k[:])
	return k
}

func (s *testStream) block() (b types.Block) {
	s.fill(b[:])
	return b
}

// forcedDispatcher pretends the hardware backend is compiled in, with a controllable probe
func forcedDispatcher(policy Policy, probe func() bool) *Dispatcher {
	d := NewDispatcher(policy, probe)
	d.compiled = true
	return d
}
