package wireless

import (
	"context"
	"errors"
	"time"
)

// ErrUnsupported signals that the platform forbids or cannot perform wireless
// lookups (several mobile OSes restrict scanning for privacy). Callers degrade
// to GPS-only detection; this is never a fatal condition.
var ErrUnsupported = errors.New("wireless lookup unsupported on this platform")

// Network identifies a wireless access point. At least one of SSID or BSSID
// must be set for the network to be usable in matching.
type Network struct {
	SSID  string `json:"ssid,omitempty"`
	BSSID string `json:"bssid,omitempty"`
}

// Usable reports whether the network carries any identifier at all.
func (n Network) Usable() bool {
	return n.SSID != "" || n.BSSID != ""
}

// Observation is a sighting of a network, optionally with signal strength.
type Observation struct {
	Network
	SignalDBM  *int      `json:"signal_dbm,omitempty"`
	ObservedAt time.Time `json:"observed_at"`
}

// Sensor is the platform boundary for wireless state. Implementations must
// return ErrUnsupported rather than failing when the platform forbids access;
// Scan may legitimately return only the currently associated network.
type Sensor interface {
	// Current returns the actively associated network, or nil when not
	// associated.
	Current(ctx context.Context) (*Observation, error)
	// Scan returns a best-effort list of visible networks.
	Scan(ctx context.Context) ([]Observation, error)
}
