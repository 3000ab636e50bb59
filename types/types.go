package types

import (
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
	"lukechampine.com/uint128"
)

const (
	KeySize   = 16
	BlockSize = 16
	HashSize  = 32
)

// Key AES-128 cipher key
//
//nolint:recvcheck
type Key [KeySize]byte

// Block single AES block, also the unit all cipher entry points transform
//
//nolint:recvcheck
type Block [BlockSize]byte

//nolint:recvcheck
type Hash [HashSize]byte

var ZeroKey Key
var ZeroBlock Block
var ZeroHash Hash

var errWrongSize = errors.New("wrong size")

func decodeHexString(dst []byte, s string) error {
	buf, err := fasthex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(buf) != len(dst) {
		return errWrongSize
	}
	copy(dst, buf)
	return nil
}

func marshalHex(b []byte) ([]byte, error) {
	buf := make([]byte, len(b)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:], b)
	return buf, nil
}

func unmarshalHex(dst, b []byte) error {
	// null or empty string leave the value untouched
	if len(b) == 0 || len(b) == 2 || string(b) == "null" {
		return nil
	}

	if len(b) != len(dst)*2+2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errWrongSize
	}

	if _, err := fasthex.Decode(dst, b[1:len(b)-1]); err != nil {
		return err
	}
	return nil
}

func KeyFromString(s string) (k Key, err error) {
	err = decodeHexString(k[:], s)
	return k, err
}

func MustKeyFromString(s string) Key {
	k, err := KeyFromString(s)
	if err != nil {
		panic(err)
	}
	return k
}

// KeyFromBytes copies buf into a Key, failing unless buf is exactly KeySize long
func KeyFromBytes(buf []byte) (k Key, err error) {
	if len(buf) != KeySize {
		return k, errWrongSize
	}
	copy(k[:], buf)
	return k, nil
}

func (k Key) String() string {
	return fasthex.EncodeToString(k[:])
}

func (k Key) MarshalJSON() ([]byte, error) {
	return marshalHex(k[:])
}

func (k *Key) UnmarshalJSON(b []byte) error {
	return unmarshalHex(k[:], b)
}

// Clear overwrites the key material with zeroes
func (k *Key) Clear() {
	clear(k[:])
}

func BlockFromString(s string) (b Block, err error) {
	err = decodeHexString(b[:], s)
	return b, err
}

func MustBlockFromString(s string) Block {
	b, err := BlockFromString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// BlockFromBytes copies buf into a Block, failing unless buf is exactly BlockSize long
func BlockFromBytes(buf []byte) (b Block, err error) {
	if len(buf) != BlockSize {
		return b, errWrongSize
	}
	copy(b[:], buf)
	return b, nil
}

// BlockFromUint128 big-endian encoding of v
func BlockFromUint128(v uint128.Uint128) (b Block) {
	v.PutBytesBE(b[:])
	return b
}

// Uint128 big-endian value of the block
func (b Block) Uint128() uint128.Uint128 {
	return uint128.FromBytesBE(b[:])
}

func (b Block) Slice() []byte {
	return b[:]
}

func (b Block) String() string {
	return fasthex.EncodeToString(b[:])
}

func (b Block) MarshalJSON() ([]byte, error) {
	return marshalHex(b[:])
}

func (b *Block) UnmarshalJSON(buf []byte) error {
	return unmarshalHex(b[:], buf)
}

func HashFromString(s string) (h Hash, err error) {
	err = decodeHexString(h[:], s)
	return h, err
}

func MustHashFromString(s string) Hash {
	h, err := HashFromString(s)
	if err != nil {
		panic(err)
	}
	return h
}

func (h Hash) Slice() []byte {
	return h[:]
}

func (h Hash) String() string {
	return fasthex.EncodeToString(h[:])
}

func (h Hash) MarshalJSON() ([]byte, error) {
	var buf [HashSize*2 + 2]byte
	buf[0] = '"'
	buf[HashSize*2+1] = '"'
	fasthex.Encode(buf[1:], h[:])
	return buf[:], nil
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	return unmarshalHex(h[:], b)
}
