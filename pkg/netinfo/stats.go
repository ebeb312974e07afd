package netinfo

import (
	"fmt"
	"sync/atomic"
)

// NetworkStats accumulates per-connection traffic counters. Counters
// are atomic so the send and receive paths can update them without a
// shared lock; Snapshot returns a plain value for serialization.
type NetworkStats struct {
	packetsSent     atomic.Uint64
	packetsReceived atomic.Uint64
	bytesSent       atomic.Uint64
	bytesReceived   atomic.Uint64
	packetsLost     atomic.Uint64
}

// StatsSnapshot is the value form of NetworkStats.
type StatsSnapshot struct {
	PacketsSent     uint64 `json:"packets_sent" yaml:"packets_sent"`
	PacketsReceived uint64 `json:"packets_received" yaml:"packets_received"`
	BytesSent       uint64 `json:"bytes_sent" yaml:"bytes_sent"`
	BytesReceived   uint64 `json:"bytes_received" yaml:"bytes_received"`
	PacketsLost     uint64 `json:"packets_lost" yaml:"packets_lost"`
}

// RecordSent counts one outgoing packet of the given size.
func (s *NetworkStats) RecordSent(bytes int) {
	s.packetsSent.Add(1)
	s.bytesSent.Add(uint64(bytes))
}

// RecordReceived counts one incoming packet of the given size.
func (s *NetworkStats) RecordReceived(bytes int) {
	s.packetsReceived.Add(1)
	s.bytesReceived.Add(uint64(bytes))
}

// RecordLost counts one packet reported lost.
func (s *NetworkStats) RecordLost() {
	s.packetsLost.Add(1)
}

// Snapshot returns the current counter values.
func (s *NetworkStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		PacketsSent:     s.packetsSent.Load(),
		PacketsReceived: s.packetsReceived.Load(),
		BytesSent:       s.bytesSent.Load(),
		BytesReceived:   s.bytesReceived.Load(),
		PacketsLost:     s.packetsLost.Load(),
	}
}

// LossRate returns the fraction of sent packets reported lost.
func (s StatsSnapshot) LossRate() float64 {
	if s.PacketsSent == 0 {
		return 0
	}
	return float64(s.PacketsLost) / float64(s.PacketsSent)
}

// String renders the snapshot for logs.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf("sent=%d/%dB recv=%d/%dB lost=%d",
		s.PacketsSent, s.BytesSent, s.PacketsReceived, s.BytesReceived, s.PacketsLost)
}
