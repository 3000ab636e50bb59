package aes128

import (
	"errors"
	"fmt"

	"git.gammaspectra.live/P2Pool/aes128/utils"
)

// Backend explicit backend choice for a context
type Backend int

const (
	// BackendAuto lets the Dispatcher decide
	BackendAuto Backend = iota
	BackendSoftware
	// BackendHardware fails context creation with ErrHardwareUnavailable when not usable
	BackendHardware
)

func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendSoftware:
		return "software"
	case BackendHardware:
		return "hardware"
	}
	return ""
}

func (b Backend) MarshalJSON() ([]byte, error) {
	return []byte("\"" + b.String() + "\""), nil
}

func (b *Backend) UnmarshalJSON(buf []byte) error {
	var s string
	if err := utils.UnmarshalJSON(buf, &s); err != nil {
		return err
	}

	v, err := ParseBackend(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func ParseBackend(s string) (Backend, error) {
	switch s {
	case "", "auto": //special case for config.json
		return BackendAuto, nil
	case "software":
		return BackendSoftware, nil
	case "hardware":
		return BackendHardware, nil
	}
	return BackendAuto, fmt.Errorf("unknown backend %s", s)
}

func ParsePolicy(s string) (p Policy, err error) {
	err = p.UnmarshalJSON([]byte("\"" + s + "\""))
	return p, err
}

type Config struct {
	Backend Backend `json:"backend"`
	Policy  Policy  `json:"policy"`

	// CacheSize bounds a ContextCache. 0 keeps every context, negative disables caching.
	CacheSize int `json:"cache_size,omitempty"`

	// Dispatcher overrides the package dispatcher chosen from Policy
	Dispatcher *Dispatcher `json:"-"`
}

var DefaultConfig = Config{
	Backend: BackendAuto,
	Policy:  PolicySticky,
}

func NewConfigFromJSON(data []byte) (*Config, error) {
	c := DefaultConfig
	if err := utils.UnmarshalJSON(data, &c); err != nil {
		return nil, err
	}

	if !c.verify() {
		return nil, errors.New("could not verify")
	}

	return &c, nil
}

func (c *Config) verify() bool {
	if c.Backend < BackendAuto || c.Backend > BackendHardware {
		return false
	}
	if c.Policy < PolicySticky || c.Policy > PolicyPerContext {
		return false
	}
	return true
}

func (c *Config) dispatcher() *Dispatcher {
	if c.Dispatcher != nil {
		return c.Dispatcher
	}
	if c.Policy == PolicyPerContext {
		return perContextDispatcher
	}
	return DefaultDispatcher
}

func (c *Config) selectBackend() (backend, error) {
	switch c.Backend {
	case BackendSoftware:
		return softwareBackend{}, nil
	case BackendHardware:
		if !c.dispatcher().hardwareAvailable() {
			return nil, ErrHardwareUnavailable
		}
		return hardwareBackend{}, nil
	case BackendAuto:
		return backendForMode(c.dispatcher().Resolve()), nil
	}
	return nil, fmt.Errorf("unknown backend %d", c.Backend)
}
