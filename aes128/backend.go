package aes128

import (
	"crypto/aes"

	"git.gammaspectra.live/P2Pool/aes128/types"
)

// backend executes key expansion and block transforms for a Context
type backend interface {
	mode() Mode
	expandKey(c *Context, key *types.Key) error
	encryptBlock(c *Context, dst, src *types.Block)
	decryptBlock(c *Context, dst, src *types.Block)
}

type softwareBackend struct{}

func (softwareBackend) mode() Mode {
	return ModeSoftware
}

func (softwareBackend) expandKey(c *Context, key *types.Key) error {
	c.schedule = ExpandKey(key)
	return nil
}

func (softwareBackend) encryptBlock(c *Context, dst, src *types.Block) {
	encryptBlock(&c.schedule, dst, src)
}

func (softwareBackend) decryptBlock(c *Context, dst, src *types.Block) {
	decryptBlock(&c.schedule, dst, src)
}

// hardwareBackend delegates to the runtime AES implementation, which uses AES-NI or the ARMv8
// cryptography extension. Only selected when HardwareSupported reports true.
type hardwareBackend struct{}

func (hardwareBackend) mode() Mode {
	return ModeHardware
}

func (hardwareBackend) expandKey(c *Context, key *types.Key) error {
	c.key = *key
	block, err := aes.NewCipher(c.key[:])
	if err != nil {
		return err
	}
	c.hw = block
	return nil
}

func (hardwareBackend) encryptBlock(c *Context, dst, src *types.Block) {
	c.hw.Encrypt(dst[:], src[:])
}

func (hardwareBackend) decryptBlock(c *Context, dst, src *types.Block) {
	c.hw.Decrypt(dst[:], src[:])
}

func backendForMode(m Mode) backend {
	if m == ModeHardware {
		return hardwareBackend{}
	}
	return softwareBackend{}
}

// HardwareCompiled reports whether this build carries the hardware backend at all.
// It is false under the purego build tag and on architectures without an accelerated path.
func HardwareCompiled() bool {
	return hardwareCompiled
}

// HardwareSupported capability probe for the hardware backend
func HardwareSupported() bool {
	return hardwareCompiled && hasHardwareAES()
}
