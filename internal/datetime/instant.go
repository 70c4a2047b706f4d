// Package datetime turns raw timestamps into display strings: a Normalizer
// canonicalizes the input, and a Dispatcher renders it absolutely or
// relative to the wall clock depending on the Mode.
package datetime

import (
	"strconv"
	"time"
)

// Instant is a count of milliseconds since the Unix epoch, or Invalid.
type Instant struct {
	ms    int64
	valid bool
}

// Invalid is the instant produced by unparsable input.
var Invalid = Instant{}

// FromMillis returns the instant ms milliseconds after the epoch.
func FromMillis(ms int64) Instant {
	return Instant{ms: ms, valid: true}
}

// FromTime converts t, truncating to millisecond precision.
func FromTime(t time.Time) Instant {
	return FromMillis(t.UnixMilli())
}

// Valid reports whether the instant came from a successful parse.
func (i Instant) Valid() bool { return i.valid }

// Millis returns the epoch offset. It is zero for Invalid.
func (i Instant) Millis() int64 { return i.ms }

// Truthy reports whether the instant is valid and not the epoch itself.
func (i Instant) Truthy() bool { return i.valid && i.ms != 0 }

// Time converts a valid instant to a time.Time in UTC.
func (i Instant) Time() time.Time {
	return time.UnixMilli(i.ms).UTC()
}

// String returns the decimal millisecond count, or "NaN" for Invalid.
func (i Instant) String() string {
	if !i.valid {
		return "NaN"
	}
	return strconv.FormatInt(i.ms, 10)
}
