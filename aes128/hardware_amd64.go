//go:build amd64 && !purego

package aes128

import "golang.org/x/sys/cpu"

const hardwareCompiled = true

func hasHardwareAES() bool {
	return cpu.X86.HasAES
}
