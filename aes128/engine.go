package aes128

import (
	"git.gammaspectra.live/P2Pool/aes128/aes128/gf"
	"git.gammaspectra.live/P2Pool/aes128/aes128/internal/tables"
	"git.gammaspectra.live/P2Pool/aes128/types"
)

// state cipher state, indexed [row][column]. Lives only for one block transform.
type state [4][nb]byte

// MixColumns polynomial a(x) = {03}x³ + {01}x² + {01}x + {02}
var mixCoefficients = [4]byte{0x02, 0x01, 0x01, 0x03}

// InvMixColumns polynomial a⁻¹(x) = {0b}x³ + {0d}x² + {09}x + {0e}
var invMixCoefficients = [4]byte{0x0e, 0x09, 0x0d, 0x0b}

// load input column-major, state[r][c] = in[r + 4c]
func (s *state) load(in *types.Block) {
	for c := range nb {
		for r := range 4 {
			s[r][c] = in[r+4*c]
		}
	}
}

func (s *state) store(out *types.Block) {
	for c := range nb {
		for r := range 4 {
			out[r+4*c] = s[r][c]
		}
	}
}

func (s *state) addRoundKey(w *Schedule, round int) {
	for c := range nb {
		k := &w[round*nb+c]
		for r := range 4 {
			s[r][c] = gf.Add(s[r][c], k[r])
		}
	}
}

func (s *state) subBytes() {
	for r := range s {
		for c := range s[r] {
			s[r][c] = tables.SBox[s[r][c]]
		}
	}
}

func (s *state) invSubBytes() {
	for r := range s {
		for c := range s[r] {
			s[r][c] = tables.InvSBox[s[r][c]]
		}
	}
}

// shiftRows rotates row r left by r positions
func (s *state) shiftRows() {
	for r := 1; r < 4; r++ {
		row := s[r]
		for c := range nb {
			s[r][c] = row[(c+r)%nb]
		}
	}
}

// invShiftRows rotates row r right by r positions
func (s *state) invShiftRows() {
	for r := 1; r < 4; r++ {
		row := s[r]
		for c := range nb {
			s[r][c] = row[(c+nb-r)%nb]
		}
	}
}

// mix multiplies every column by the fixed polynomial a modulo x⁴ + 1:
// out[k] = ⊕ a[(k-j) mod 4]·col[j]
func (s *state) mix(a *[4]byte) {
	for c := range nb {
		col := [4]byte{s[0][c], s[1][c], s[2][c], s[3][c]}
		for k := range 4 {
			var v byte
			for j := range 4 {
				v = gf.Add(v, gf.Mul(a[(k-j+4)%4], col[j]))
			}
			s[k][c] = v
		}
	}
}

func (s *state) mixColumns() {
	s.mix(&mixCoefficients)
}

func (s *state) invMixColumns() {
	s.mix(&invMixCoefficients)
}

// encryptBlock dst and src may be the same block
func encryptBlock(w *Schedule, dst, src *types.Block) {
	var s state
	s.load(src)

	s.addRoundKey(w, 0)
	for round := 1; round < rounds; round++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(w, round)
	}

	// final round has no MixColumns
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(w, rounds)

	s.store(dst)
}

// decryptBlock dst and src may be the same block
func decryptBlock(w *Schedule, dst, src *types.Block) {
	var s state
	s.load(src)

	s.addRoundKey(w, rounds)
	for round := rounds - 1; round >= 1; round-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(w, round)
		s.invMixColumns()
	}

	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(w, 0)

	s.store(dst)
}
