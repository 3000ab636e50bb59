//go:build !darwin && arm64 && !purego

package aes128

import "golang.org/x/sys/cpu"

const hardwareCompiled = true

func hasHardwareAES() bool {
	return cpu.ARM64.HasAES
}
