// Package netinfo provides the replication-facing value aggregates a
// game server hands to its transport: movement snapshots, session
// descriptors and traffic counters. It carries data only; the
// transport itself lives outside this module.
package netinfo

import (
	"fmt"
	"sync/atomic"
)

// NetworkGUID identifies a replicated object within one server run.
// Unlike guid.Guid it is small, sequential and only unique per
// process.
type NetworkGUID struct {
	Value uint32
}

// InvalidNetworkGUID is the zero identifier.
var InvalidNetworkGUID = NetworkGUID{}

var netGUIDCounter atomic.Uint32

// NextNetworkGUID returns the next sequential identifier. Safe for
// concurrent use.
func NextNetworkGUID() NetworkGUID {
	return NetworkGUID{Value: netGUIDCounter.Add(1)}
}

// IsValid reports whether the identifier is non-zero.
func (g NetworkGUID) IsValid() bool {
	return g.Value != 0
}

// String renders the identifier for logs.
func (g NetworkGUID) String() string {
	return fmt.Sprintf("NetGUID(%d)", g.Value)
}
