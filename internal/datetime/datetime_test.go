package datetime

import (
	"errors"
	"testing"
	"time"

	"github.com/brandonbloom/dtfmt/internal/locale"
	"github.com/jonboulle/clockwork"
)

var rfc3339 = ParserFunc(func(raw string) Instant {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return Invalid
	}
	return FromTime(t)
})

var refTime = time.Date(2024, time.March, 3, 16, 5, 0, 0, time.UTC)

func newTestDispatcher(t *testing.T) (*Dispatcher, *clockwork.FakeClock) {
	t.Helper()
	f, err := locale.New("en-US", "UTC")
	if err != nil {
		t.Fatalf("locale.New: %v", err)
	}
	clock := clockwork.NewFakeClockAt(refTime)
	return NewDispatcher(f, clock), clock
}

func TestDispatcherExposesClock(t *testing.T) {
	d, clock := newTestDispatcher(t)
	if d.Clock() != clock {
		t.Fatalf("Clock() did not return the injected clock")
	}
	if got := NewDispatcher(nil, nil).Clock(); got == nil {
		t.Fatalf("nil clock should default to the real clock")
	}
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
		str  string
	}{
		{"", Local, "local"},
		{"local", Local, "local"},
		{"relative", Relative, "relative"},
		{"utc", Other, "utc"},
		{"Relative", Other, "Relative"},
	}
	for _, tc := range cases {
		m := ParseMode(tc.in)
		if m.Kind != tc.kind || m.String() != tc.str {
			t.Fatalf("ParseMode(%q) = %+v, want kind %v %q", tc.in, m, tc.kind, tc.str)
		}
	}
}

func TestInstant(t *testing.T) {
	if Invalid.Valid() || Invalid.Truthy() || Invalid.String() != "NaN" {
		t.Fatalf("unexpected Invalid: %+v", Invalid)
	}
	epoch := FromMillis(0)
	if !epoch.Valid() || epoch.Truthy() {
		t.Fatalf("epoch should be valid but falsy")
	}
	i := FromMillis(1700000000000)
	if i.String() != "1700000000000" || !i.Truthy() {
		t.Fatalf("unexpected instant %v", i)
	}
	if !i.Time().Equal(time.Date(2023, time.November, 14, 22, 13, 20, 0, time.UTC)) {
		t.Fatalf("Time() = %v", i.Time())
	}
}

func TestNormalizerSkipsRepeatedValue(t *testing.T) {
	n := NewNormalizer(rfc3339)

	if _, changed := n.Update("2024-03-03T16:05:00Z"); !changed {
		t.Fatalf("first update should change")
	}
	if _, changed := n.Update("2024-03-03T16:05:00Z"); changed {
		t.Fatalf("repeated update should not change")
	}
	got, changed := n.Update("2024-03-03T17:05:00Z")
	if !changed {
		t.Fatalf("new value should change")
	}
	if got.Millis() != refTime.Add(time.Hour).UnixMilli() {
		t.Fatalf("stored %v", got)
	}
}

func TestNormalizerAlwaysAcceptsFalsyValues(t *testing.T) {
	n := NewNormalizer(rfc3339)

	for i := 0; i < 2; i++ {
		got, changed := n.Update("garbage")
		if !changed || got.Valid() {
			t.Fatalf("update %d: got %v changed=%v", i, got, changed)
		}
	}
	for i := 0; i < 2; i++ {
		got, changed := n.Update("1970-01-01T00:00:00Z")
		if !changed || !got.Valid() {
			t.Fatalf("epoch update %d: got %v changed=%v", i, got, changed)
		}
	}

	n.Update("2024-03-03T16:05:00Z")
	if _, changed := n.Update("garbage"); !changed {
		t.Fatalf("invalid input should overwrite a stored instant")
	}
	if cur, ok := n.Current(); !ok || cur.Valid() {
		t.Fatalf("Current() = %v, %v", cur, ok)
	}
}

func TestDispatcherOtherModeReturnsRawInstant(t *testing.T) {
	d, _ := newTestDispatcher(t)

	got, err := d.Format(ParseMode("utc"), FromMillis(1700000000000), locale.Options{})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "1700000000000" {
		t.Fatalf("got %q", got)
	}
	if got, _ := d.Format(ParseMode("utc"), Invalid, locale.Options{}); got != "NaN" {
		t.Fatalf("invalid raw instant = %q, want NaN", got)
	}
}

func TestDispatcherRelative(t *testing.T) {
	d, clock := newTestDispatcher(t)
	rel := ParseMode("relative")

	cases := []struct {
		name    string
		instant time.Time
		want    string
	}{
		{"years", refTime.AddDate(0, 0, -1042), "3 years ago"},
		{"dayish", refTime.Add(-90061000 * time.Millisecond), "a day ago"},
		{"future", refTime.Add(2 * time.Hour), "2 hours until"},
		{"now", refTime, "just now"},
	}
	for _, tc := range cases {
		got, err := d.Format(rel, FromTime(tc.instant), locale.Options{})
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}

	clock.Advance(20 * time.Second)
	got, _ := d.Format(rel, FromTime(refTime), locale.Options{})
	if got != "20 seconds ago" {
		t.Fatalf("after advancing clock got %q", got)
	}

	if got, err := d.Format(rel, Invalid, locale.Options{}); err != nil || got != "just now" {
		t.Fatalf("invalid relative = %q, %v", got, err)
	}
}

func TestDispatcherLocal(t *testing.T) {
	d, _ := newTestDispatcher(t)
	local := ParseMode("")

	opts := locale.Options{Year: locale.Numeric, Month: locale.Long, Day: locale.Numeric}
	got, err := d.Format(local, FromTime(refTime), opts)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "March 3, 2024" {
		t.Fatalf("got %q", got)
	}

	if _, err := d.Format(local, Invalid, opts); !errors.Is(err, locale.ErrInvalidTime) {
		t.Fatalf("expected ErrInvalidTime, got %v", err)
	}
	if _, err := d.Format(local, FromTime(refTime), locale.Options{Hour: "numerical"}); !errors.Is(err, locale.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}
