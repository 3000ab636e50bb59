package aes128

import (
	"testing"

	"git.gammaspectra.live/P2Pool/aes128/types"
)

func TestExpandKey(t *testing.T) {
	// FIPS-197 Appendix A.1
	key := types.MustKeyFromString("2b7e151628aed2a6abf7158809cf4f3c")
	w := ExpandKey(&key)

	expected := map[int]uint32{
		0:  0x2b7e1516,
		3:  0x09cf4f3c,
		4:  0xa0fafe17,
		5:  0x88542cb1,
		6:  0x23a33939,
		7:  0x2a6c7605,
		8:  0xf2c295f2,
		40: 0xd014f9a8,
		41: 0xc9ee2589,
		42: 0xe13f0cc8,
		43: 0xb6630ca6,
	}
	for i, want := range expected {
		if got := w.Word(i); got != want {
			t.Errorf("w[%d] = %08x, want %08x", i, got, want)
		}
	}
}

func TestExpandKey_Length(t *testing.T) {
	key := types.MustKeyFromString("000102030405060708090a0b0c0d0e0f")
	w := ExpandKey(&key)
	if len(w) != 44 {
		t.Fatalf("schedule has %d words, want 44", len(w))
	}
	if len(w)*len(w[0]) != 176 {
		t.Fatalf("schedule has %d bytes, want 176", len(w)*len(w[0]))
	}

	// FIPS-197 C.1 round[10].k_sch
	if rk := w.RoundKey(rounds); rk != types.MustBlockFromString("13111d7fe3944a17f307a78b4d2b30c5") {
		t.Errorf("round key 10 = %s", rk)
	}
	if rk := w.RoundKey(0); rk != types.Block(key) {
		t.Errorf("round key 0 = %s, want the key %s", rk, key)
	}
}

func TestExpandKey_Deterministic(t *testing.T) {
	stream := newTestStream(t, "schedule")
	for range 64 {
		key := stream.key()
		a, b := ExpandKey(&key), ExpandKey(&key)
		if a != b {
			t.Fatalf("key %s expanded to different schedules", key)
		}
	}
}

func BenchmarkExpandKey(b *testing.B) {
	key := types.MustKeyFromString("2b7e151628aed2a6abf7158809cf4f3c")
	b.ReportAllocs()
	var w Schedule
	for b.Loop() {
		w = ExpandKey(&key)
	}
	_ = w
}
