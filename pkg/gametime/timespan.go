// Package gametime provides instants and spans on the 100-nanosecond
// tick scale used by persisted game state, with conversions to the
// standard library's time types.
package gametime

import (
	"fmt"
	"math"
	"time"
)

// Tick scale constants.
const (
	TicksPerMicrosecond int64 = 10
	TicksPerMillisecond int64 = 10_000
	TicksPerSecond      int64 = 10_000_000
	TicksPerMinute            = TicksPerSecond * 60
	TicksPerHour              = TicksPerMinute * 60
	TicksPerDay               = TicksPerHour * 24
)

// Timespan is a signed span of time in 100ns ticks.
type Timespan struct {
	Ticks int64
}

// ZeroSpan is the empty timespan.
var ZeroSpan = Timespan{}

// SpanFromTicks returns a timespan of the given ticks.
func SpanFromTicks(ticks int64) Timespan {
	return Timespan{Ticks: ticks}
}

// SpanFromSeconds returns a timespan of the given fractional seconds.
func SpanFromSeconds(seconds float64) Timespan {
	return Timespan{Ticks: int64(math.Round(seconds * float64(TicksPerSecond)))}
}

// SpanFromMinutes returns a timespan of the given fractional minutes.
func SpanFromMinutes(minutes float64) Timespan {
	return SpanFromSeconds(minutes * 60)
}

// SpanFromHours returns a timespan of the given fractional hours.
func SpanFromHours(hours float64) Timespan {
	return SpanFromSeconds(hours * 3600)
}

// SpanFromDuration converts a standard library duration.
func SpanFromDuration(d time.Duration) Timespan {
	return Timespan{Ticks: d.Nanoseconds() / 100}
}

// Duration converts to a standard library duration.
func (t Timespan) Duration() time.Duration {
	return time.Duration(t.Ticks * 100)
}

// TotalSeconds returns the span in fractional seconds.
func (t Timespan) TotalSeconds() float64 {
	return float64(t.Ticks) / float64(TicksPerSecond)
}

// TotalMinutes returns the span in fractional minutes.
func (t Timespan) TotalMinutes() float64 {
	return t.TotalSeconds() / 60
}

// TotalHours returns the span in fractional hours.
func (t Timespan) TotalHours() float64 {
	return t.TotalSeconds() / 3600
}

// TotalDays returns the span in fractional days.
func (t Timespan) TotalDays() float64 {
	return t.TotalSeconds() / 86400
}

// Add returns t + other.
func (t Timespan) Add(other Timespan) Timespan {
	return Timespan{Ticks: t.Ticks + other.Ticks}
}

// Sub returns t - other.
func (t Timespan) Sub(other Timespan) Timespan {
	return Timespan{Ticks: t.Ticks - other.Ticks}
}

// Abs returns the magnitude of the span.
func (t Timespan) Abs() Timespan {
	if t.Ticks < 0 {
		return Timespan{Ticks: -t.Ticks}
	}
	return t
}

// IsNegative reports whether the span runs backwards.
func (t Timespan) IsNegative() bool {
	return t.Ticks < 0
}

// IsZero reports whether the span is empty.
func (t Timespan) IsZero() bool {
	return t.Ticks == 0
}

// String renders the span as [-][d.]hh:mm:ss.mmm.
func (t Timespan) String() string {
	ticks := t.Ticks
	sign := ""
	if ticks < 0 {
		sign = "-"
		ticks = -ticks
	}
	days := ticks / TicksPerDay
	hours := (ticks % TicksPerDay) / TicksPerHour
	minutes := (ticks % TicksPerHour) / TicksPerMinute
	seconds := (ticks % TicksPerMinute) / TicksPerSecond
	millis := (ticks % TicksPerSecond) / TicksPerMillisecond
	if days > 0 {
		return fmt.Sprintf("%s%d.%02d:%02d:%02d.%03d", sign, days, hours, minutes, seconds, millis)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d.%03d", sign, hours, minutes, seconds, millis)
}
