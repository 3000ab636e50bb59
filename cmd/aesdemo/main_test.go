package main

import (
	"bytes"
	"strings"
	"testing"

	"git.gammaspectra.live/P2Pool/aes128/aes128"
	"git.gammaspectra.live/P2Pool/aes128/types"
	"git.gammaspectra.live/P2Pool/aes128/utils"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	key := types.MustKeyFromString(defaultKey)
	require.Equal(t, "0ade29123bf34391-80feadbc0f75d429", split(key[:]))
}

func TestLogSupport(t *testing.T) {
	var out bytes.Buffer
	previous := utils.LogOutput
	utils.LogOutput = &out
	defer func() {
		utils.LogOutput = previous
	}()

	logSupport(true)
	require.Contains(t, out.String(), "[AES] INFO CPU-based AES acceleration is supported!")

	out.Reset()
	logSupport(false)
	require.Contains(t, out.String(), "[AES] ERROR CPU-based AES acceleration is unsupported!")
}

func TestBench(t *testing.T) {
	var out bytes.Buffer
	previous := utils.LogOutput
	utils.LogOutput = &out
	defer func() {
		utils.LogOutput = previous
	}()

	key := types.MustKeyFromString(defaultKey)
	ctx, err := aes128.NewFromKey(&key, aes128.Config{Backend: aes128.BackendSoftware})
	require.NoError(t, err)
	defer ctx.Close()

	var plaintext types.Block
	copy(plaintext[:], defaultData)

	bench(ctx, plaintext, benchChunk*3+17, 4)
	require.True(t, strings.Contains(out.String(), "[BENCH]"))
}
