package aes128

import (
	"fmt"
	"sync"
	"sync/atomic"

	"git.gammaspectra.live/P2Pool/aes128/utils"
)

// Mode which backend executes a context's operations
type Mode uint32

const (
	ModeUndetermined Mode = iota
	ModeSoftware
	ModeHardware
)

func (m Mode) String() string {
	switch m {
	case ModeUndetermined:
		return "undetermined"
	case ModeSoftware:
		return "software"
	case ModeHardware:
		return "hardware"
	}
	return ""
}

func (m Mode) MarshalJSON() ([]byte, error) {
	return []byte("\"" + m.String() + "\""), nil
}

func (m *Mode) UnmarshalJSON(b []byte) error {
	var s string
	if err := utils.UnmarshalJSON(b, &s); err != nil {
		return err
	}

	switch s {
	case "", "undetermined":
		*m = ModeUndetermined
	case "software":
		*m = ModeSoftware
	case "hardware":
		*m = ModeHardware
	default:
		return fmt.Errorf("unknown mode %s", s)
	}
	return nil
}

// Policy when a Dispatcher consults its capability probe
type Policy int

const (
	// PolicySticky probes once, the first resolution holds for the dispatcher's lifetime
	PolicySticky Policy = iota
	// PolicyPerContext probes on every resolution
	PolicyPerContext
)

func (p Policy) String() string {
	switch p {
	case PolicySticky:
		return "sticky"
	case PolicyPerContext:
		return "per-context"
	}
	return ""
}

func (p Policy) MarshalJSON() ([]byte, error) {
	return []byte("\"" + p.String() + "\""), nil
}

func (p *Policy) UnmarshalJSON(b []byte) error {
	var s string
	if err := utils.UnmarshalJSON(b, &s); err != nil {
		return err
	}

	switch s {
	case "", "sticky":
		*p = PolicySticky
	case "per-context":
		*p = PolicyPerContext
	default:
		return fmt.Errorf("unknown policy %s", s)
	}
	return nil
}

// Dispatcher decides between software and hardware execution.
// Safe for concurrent use, the first sticky resolution happens exactly once.
type Dispatcher struct {
	policy   Policy
	probe    func() bool
	compiled bool

	lock sync.Mutex
	mode atomic.Uint32
}

// NewDispatcher probe reports hardware capability, nil selects HardwareSupported
func NewDispatcher(policy Policy, probe func() bool) *Dispatcher {
	if probe == nil {
		probe = HardwareSupported
	}
	return &Dispatcher{
		policy:   policy,
		probe:    probe,
		compiled: hardwareCompiled,
	}
}

// DefaultDispatcher process-wide sticky dispatcher used by New
var DefaultDispatcher = NewDispatcher(PolicySticky, nil)

var perContextDispatcher = NewDispatcher(PolicyPerContext, nil)

func (d *Dispatcher) Policy() Policy {
	return d.policy
}

// Mode last resolved mode, ModeUndetermined before the first resolution
func (d *Dispatcher) Mode() Mode {
	return Mode(d.mode.Load())
}

// Resolve returns the mode new contexts use
func (d *Dispatcher) Resolve() Mode {
	if d.policy == PolicyPerContext {
		m := d.detect()
		d.mode.Store(uint32(m))
		return m
	}

	if m := Mode(d.mode.Load()); m != ModeUndetermined {
		return m
	}

	d.lock.Lock()
	defer d.lock.Unlock()
	if m := Mode(d.mode.Load()); m != ModeUndetermined {
		return m
	}

	m := d.detect()
	d.mode.Store(uint32(m))
	utils.Noticef("AES", "encoding mode resolved to %s", m)
	return m
}

// Reset forgets the resolved mode, the next Resolve probes again
func (d *Dispatcher) Reset() {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.mode.Store(uint32(ModeUndetermined))
}

// hardwareAvailable whether a context may use the hardware backend right now
func (d *Dispatcher) hardwareAvailable() bool {
	return d.compiled && d.probe()
}

func (d *Dispatcher) detect() Mode {
	if d.hardwareAvailable() {
		return ModeHardware
	}
	return ModeSoftware
}
