package aes128

import (
	"errors"
	"testing"

	"git.gammaspectra.live/P2Pool/aes128/utils"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromJSON(t *testing.T) {
	cfg, err := NewConfigFromJSON([]byte(`{"backend":"software","policy":"per-context","cache_size":32}`))
	require.NoError(t, err)
	require.Equal(t, BackendSoftware, cfg.Backend)
	require.Equal(t, PolicyPerContext, cfg.Policy)
	require.Equal(t, 32, cfg.CacheSize)

	cfg, err = NewConfigFromJSON([]byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig.Backend, cfg.Backend)
	require.Equal(t, DefaultConfig.Policy, cfg.Policy)

	_, err = NewConfigFromJSON([]byte(`{"backend":"gpu"}`))
	require.Error(t, err)

	_, err = NewConfigFromJSON([]byte(`{"policy":"sometimes"}`))
	require.Error(t, err)
}

func TestConfig_MarshalJSON(t *testing.T) {
	buf, err := utils.MarshalJSON(Config{Backend: BackendHardware, Policy: PolicyPerContext})
	require.NoError(t, err)
	require.JSONEq(t, `{"backend":"hardware","policy":"per-context"}`, string(buf))
}

func TestConfig_Dispatcher(t *testing.T) {
	require.Same(t, DefaultDispatcher, (&Config{}).dispatcher())
	require.Same(t, perContextDispatcher, (&Config{Policy: PolicyPerContext}).dispatcher())

	d := NewDispatcher(PolicySticky, nil)
	require.Same(t, d, (&Config{Policy: PolicyPerContext, Dispatcher: d}).dispatcher())
}

func TestConfig_HardwareUnavailable(t *testing.T) {
	unsupported := forcedDispatcher(PolicySticky, func() bool { return false })
	_, err := NewWithConfig(make([]byte, 16), Config{Backend: BackendHardware, Dispatcher: unsupported})
	require.True(t, errors.Is(err, ErrHardwareUnavailable))

	notCompiled := NewDispatcher(PolicySticky, func() bool { return true })
	notCompiled.compiled = false
	_, err = NewWithConfig(make([]byte, 16), Config{Backend: BackendHardware, Dispatcher: notCompiled})
	require.ErrorIs(t, err, ErrHardwareUnavailable)

	// an explicit choice never resolves the dispatcher
	require.Equal(t, ModeUndetermined, unsupported.Mode())
}

func TestParseBackend(t *testing.T) {
	for s, want := range map[string]Backend{"": BackendAuto, "auto": BackendAuto, "software": BackendSoftware, "hardware": BackendHardware} {
		b, err := ParseBackend(s)
		require.NoError(t, err)
		require.Equal(t, want, b)
	}
	_, err := ParseBackend("fpga")
	require.Error(t, err)

	p, err := ParsePolicy("per-context")
	require.NoError(t, err)
	require.Equal(t, PolicyPerContext, p)
}
