package gametime

import "time"

// unixEpochTicks is the tick count of 1970-01-01T00:00:00Z on the
// proleptic Gregorian calendar starting at year 1.
const unixEpochTicks int64 = 621355968000000000

// DateTime is an instant in UTC, stored as 100ns ticks since
// 0001-01-01T00:00:00Z.
type DateTime struct {
	Ticks int64
}

// FromTicks returns the instant at the given tick count.
func FromTicks(ticks int64) DateTime {
	return DateTime{Ticks: ticks}
}

// Now returns the current instant.
func Now() DateTime {
	return FromTime(time.Now())
}

// FromTime converts a standard library time.
func FromTime(t time.Time) DateTime {
	return DateTime{Ticks: unixEpochTicks + t.UnixNano()/100}
}

// FromUnix returns the instant at the given Unix seconds.
func FromUnix(seconds int64) DateTime {
	return DateTime{Ticks: unixEpochTicks + seconds*TicksPerSecond}
}

// Time converts to a standard library time in UTC.
func (d DateTime) Time() time.Time {
	return time.Unix(0, (d.Ticks-unixEpochTicks)*100).UTC()
}

// Unix returns the instant as Unix seconds.
func (d DateTime) Unix() int64 {
	return (d.Ticks - unixEpochTicks) / TicksPerSecond
}

// Add returns the instant moved forward by span.
func (d DateTime) Add(span Timespan) DateTime {
	return DateTime{Ticks: d.Ticks + span.Ticks}
}

// Sub returns the instant moved backward by span.
func (d DateTime) Sub(span Timespan) DateTime {
	return DateTime{Ticks: d.Ticks - span.Ticks}
}

// Since returns the span from other to d.
func (d DateTime) Since(other DateTime) Timespan {
	return Timespan{Ticks: d.Ticks - other.Ticks}
}

// Date truncates the instant to midnight.
func (d DateTime) Date() DateTime {
	return DateTime{Ticks: d.Ticks - d.Ticks%TicksPerDay}
}

// TimeOfDay returns the span since midnight.
func (d DateTime) TimeOfDay() Timespan {
	return Timespan{Ticks: d.Ticks % TicksPerDay}
}

// Before reports whether d precedes other.
func (d DateTime) Before(other DateTime) bool {
	return d.Ticks < other.Ticks
}

// After reports whether d follows other.
func (d DateTime) After(other DateTime) bool {
	return d.Ticks > other.Ticks
}

// String renders the instant in RFC 3339 form.
func (d DateTime) String() string {
	return d.Time().Format(time.RFC3339Nano)
}
