package parse

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	p := New(time.UTC)

	cases := []struct {
		name string
		raw  string
		want int64
	}{
		{"rfc3339", "2023-11-14T22:13:20Z", 1700000000000},
		{"rfc3339Offset", "2023-11-14T23:13:20+01:00", 1700000000000},
		{"millis", "2023-11-14T22:13:20.5Z", 1700000000500},
		{"dateOnly", "2024-03-03", 1709424000000},
		{"human", "March 3, 2024", 1709424000000},
		{"padded", "  2024-03-03  ", 1709424000000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Parse(tc.raw)
			if !got.Valid() {
				t.Fatalf("Parse(%q) returned invalid instant", tc.raw)
			}
			if got.Millis() != tc.want {
				t.Fatalf("Parse(%q) = %d, want %d", tc.raw, got.Millis(), tc.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	p := New(time.UTC)
	for _, raw := range []string{"", "   ", "not a date", "2024-13-45T99:99:99Z"} {
		if got := p.Parse(raw); got.Valid() {
			t.Fatalf("Parse(%q) = %v, want invalid", raw, got)
		}
	}
}

func TestParseUsesLocation(t *testing.T) {
	loc := time.FixedZone("Test", 2*3600)
	instant := New(loc).Parse("2024-03-03 12:00:00")
	if !instant.Valid() {
		t.Fatalf("expected valid parse")
	}
	want := time.Date(2024, time.March, 3, 10, 0, 0, 0, time.UTC)
	if got := instant.Time(); !got.Equal(want) {
		t.Fatalf("Time = %v, want %v", got, want)
	}
}
