// Package aes128 implements single-block AES-128 encryption and decryption.
//
// Every Context runs on one of two backends: a portable software round engine, or the
// hardware accelerated runtime implementation when the CPU provides AES instructions.
// Which one is used is decided by a Dispatcher when the context is created, or forced
// through Config.Backend.
package aes128

import (
	"crypto/cipher"
	"errors"
	"strconv"

	"git.gammaspectra.live/P2Pool/aes128/types"
	"git.gammaspectra.live/P2Pool/aes128/utils"
)

var (
	ErrInvalidKey          = errors.New("aes128: missing key")
	ErrHardwareUnavailable = errors.New("aes128: hardware backend required but unavailable")
	ErrClosed              = errors.New("aes128: use of closed context")
)

type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes128: invalid key size " + strconv.Itoa(int(k))
}

type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "aes128: invalid block size " + strconv.Itoa(int(b))
}

// Context expanded key material for one key. Read-only after creation, so a Context can be
// shared between goroutines until Close is called.
type Context struct {
	backend backend

	// software backend
	schedule Schedule

	// hardware backend
	key types.Key
	hw  cipher.Block
}

// New creates a context for key using DefaultConfig
func New(key []byte) (*Context, error) {
	return NewWithConfig(key, DefaultConfig)
}

// NewWithConfig key must be exactly 16 bytes
func NewWithConfig(key []byte, cfg Config) (*Context, error) {
	if key == nil {
		return nil, ErrInvalidKey
	}
	if len(key) != types.KeySize {
		return nil, KeySizeError(len(key))
	}
	k := types.Key(key)
	defer k.Clear()
	return NewFromKey(&k, cfg)
}

// NewFromKey key is copied if the backend needs to keep it
func NewFromKey(key *types.Key, cfg Config) (*Context, error) {
	if key == nil {
		return nil, ErrInvalidKey
	}

	b, err := cfg.selectBackend()
	if err != nil {
		return nil, err
	}
	return newContext(key, b)
}

func newContext(key *types.Key, b backend) (*Context, error) {
	c := &Context{
		backend: b,
	}
	if err := b.expandKey(c, key); err != nil {
		return nil, err
	}

	if utils.IsLogLevelDebug() {
		id := KeyID(key)
		utils.Debugf("AES", "context %x created, backend %s", id[:8], c.Mode())
	}

	return c, nil
}

func (c *Context) Mode() Mode {
	if c.backend == nil {
		return ModeUndetermined
	}
	return c.backend.mode()
}

// Schedule copy of the expanded round keys. Only software contexts expose them.
func (c *Context) Schedule() (Schedule, bool) {
	if c.Mode() != ModeSoftware {
		return Schedule{}, false
	}
	return c.schedule, true
}

// Encrypt dst and src may be the same block
func (c *Context) Encrypt(dst, src *types.Block) {
	if c.backend == nil {
		panic(ErrClosed)
	}
	c.backend.encryptBlock(c, dst, src)
}

// Decrypt dst and src may be the same block
func (c *Context) Decrypt(dst, src *types.Block) {
	if c.backend == nil {
		panic(ErrClosed)
	}
	c.backend.decryptBlock(c, dst, src)
}

// EncryptBlock encrypts block in place
func (c *Context) EncryptBlock(block []byte) error {
	if len(block) != types.BlockSize {
		return BlockSizeError(len(block))
	}
	if c.backend == nil {
		return ErrClosed
	}
	b := (*types.Block)(block)
	c.backend.encryptBlock(c, b, b)
	return nil
}

// DecryptBlock decrypts block in place
func (c *Context) DecryptBlock(block []byte) error {
	if len(block) != types.BlockSize {
		return BlockSizeError(len(block))
	}
	if c.backend == nil {
		return ErrClosed
	}
	b := (*types.Block)(block)
	c.backend.decryptBlock(c, b, b)
	return nil
}

// Close wipes the key material. The context is unusable afterwards.
func (c *Context) Close() {
	c.schedule.clear()
	c.key.Clear()
	c.hw = nil
	c.backend = nil
}
