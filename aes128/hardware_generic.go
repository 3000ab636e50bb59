//go:build !(amd64 || arm64) || purego

package aes128

const hardwareCompiled = false

func hasHardwareAES() bool {
	return false
}
