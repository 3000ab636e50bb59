package aes128

import (
	"fmt"
	"testing"

	"git.gammaspectra.live/P2Pool/aes128/types"
	"git.gammaspectra.live/P2Pool/aes128/utils"
	"github.com/stretchr/testify/require"
)

func TestContext_ConcurrentUse(t *testing.T) {
	vectors := loadTestVectors(t)
	contexts := make([]*Context, len(vectors))
	for i, v := range vectors {
		var err error
		contexts[i], err = NewFromKey(&v.Key, DefaultConfig)
		require.NoError(t, err)
	}

	err := utils.SplitWork(8, 4096, func(workIndex uint64, routineIndex int) error {
		i := int(workIndex % uint64(len(vectors)))
		v := &vectors[i]

		var block types.Block
		contexts[i].Encrypt(&block, &v.Plaintext)
		if block != v.Ciphertext {
			return fmt.Errorf("%s: got %s, want %s", v.Name, block, v.Ciphertext)
		}
		contexts[i].Decrypt(&block, &block)
		if block != v.Plaintext {
			return fmt.Errorf("%s: round trip got %s", v.Name, block)
		}
		return nil
	}, nil)
	require.NoError(t, err)
}

func TestContext_RoundTrip(t *testing.T) {
	stream := newTestStream(t, "context round trip")
	cache := NewContextCache(Config{CacheSize: 16})

	for range 512 {
		key := stream.key()
		plaintext := stream.block()

		ctx, err := cache.GetKey(&key)
		require.NoError(t, err)

		block := plaintext
		require.NoError(t, ctx.EncryptBlock(block[:]))
		require.NoError(t, ctx.DecryptBlock(block[:]))
		require.Equal(t, plaintext, block)
	}
}
