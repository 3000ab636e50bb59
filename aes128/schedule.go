package aes128

import (
	"encoding/binary"

	"git.gammaspectra.live/P2Pool/aes128/aes128/gf"
	"git.gammaspectra.live/P2Pool/aes128/aes128/internal/tables"
	"git.gammaspectra.live/P2Pool/aes128/types"
)

const (
	nb     = 4 // columns per block
	nk     = 4 // 32-bit words per key
	rounds = 10

	// ScheduleWords 11 round keys of 4 words each
	ScheduleWords = nb * (rounds + 1)
)

// Schedule expanded round keys, as FIPS-197 words w[0..43]
type Schedule [ScheduleWords][4]byte

// Apply the S-box to each byte in w.
func subWord(w *[4]byte) {
	for i := range w {
		w[i] = tables.SBox[w[i]]
	}
}

// Rotate left by one byte
func rotWord(w *[4]byte) {
	w[0], w[1], w[2], w[3] = w[1], w[2], w[3], w[0]
}

// ExpandKey derives the round key schedule from key. The result depends on key alone.
func ExpandKey(key *types.Key) (w Schedule) {
	for i := range nk {
		copy(w[i][:], key[4*i:4*i+4])
	}

	for i := nk; i < ScheduleWords; i++ {
		t := w[i-1]
		if i%nk == 0 {
			rotWord(&t)
			subWord(&t)
			t[0] = gf.Add(t[0], gf.Rcon(uint8(i/nk)))
		} else if nk > 6 && i%nk == 4 {
			// never taken with 128-bit keys, kept for 256-bit schedules
			subWord(&t)
		}
		for j := range t {
			w[i][j] = gf.Add(w[i-nk][j], t[j])
		}
	}
	return w
}

// Word big-endian value of w[i]
func (w *Schedule) Word(i int) uint32 {
	return binary.BigEndian.Uint32(w[i][:])
}

// RoundKey the 16 bytes XORed into the state at the given round
func (w *Schedule) RoundKey(round int) (k types.Block) {
	for c := range nb {
		copy(k[4*c:], w[round*nb+c][:])
	}
	return k
}

func (w *Schedule) clear() {
	clear(w[:])
}
