package timefmt

import "fmt"

const (
	// Future qualifies phrases for instants after the reference.
	Future = "until"
	// Past qualifies phrases for instants at or before the reference.
	Past = "ago"

	// JustNow is the phrase for deltas under ten seconds. It never carries
	// a tense.
	JustNow = "just now"
)

// Rung identifies the threshold that selected a phrase.
type Rung int

// Rungs in ascending order, each commented with the phrase it selects.
const (
	RungJustNow Rung = iota // "just now"
	RungSeconds             // "N seconds"
	RungMinute              // "a minute"
	RungMinutes             // "N minutes"
	RungHour                // "an hour"
	RungHours               // "N hours"
	RungDay                 // "a day"
	RungDays                // "N days"
	RungMonth               // "a month"
	RungMonths              // "N months"
	RungYear                // "a year"
	RungYears               // "N years"
)

var rungNames = [...]string{
	RungJustNow: "s < 10",
	RungSeconds: "s >= 10",
	RungMinute:  "s >= 45",
	RungMinutes: "s >= 90",
	RungHour:    "min >= 45",
	RungHours:   "min >= 90",
	RungDay:     "h >= 24",
	RungDays:    "h >= 36",
	RungMonth:   "d >= 30",
	RungMonths:  "d >= 45",
	RungYear:    "m >= 12",
	RungYears:   "m >= 18",
}

func (r Rung) String() string {
	if r < 0 || int(r) >= len(rungNames) {
		return fmt.Sprintf("Rung(%d)", int(r))
	}
	return rungNames[r]
}

// Breakdown records every intermediate value Humanize derives from a delta.
// Each unit is rounded from the previous rounded unit, not from the delta.
type Breakdown struct {
	Delta   int64
	Tense   string
	Seconds int64
	Minutes int64
	Hours   int64
	Days    int64
	Months  int64
	Years   int64
	Rung    Rung
	Phrase  string
}

// Explain buckets a signed millisecond delta. Positive deltas lie in the
// future; zero counts as the past.
func Explain(deltaMs int64) Breakdown {
	b := Breakdown{Delta: deltaMs, Tense: Past}
	if deltaMs > 0 {
		b.Tense = Future
	}

	seconds := roundDiv(magnitude(deltaMs), 1000)
	minutes := roundDiv(seconds, 60)
	hours := roundDiv(minutes, 60)
	days := roundDiv(hours, 24)
	months := roundDiv(days, 30)
	years := roundDiv(months, 12)
	b.Seconds, b.Minutes, b.Hours = int64(seconds), int64(minutes), int64(hours)
	b.Days, b.Months, b.Years = int64(days), int64(months), int64(years)

	switch {
	case b.Months >= 18:
		b.Rung, b.Phrase = RungYears, fmt.Sprintf("%d years", b.Years)
	case b.Months >= 12:
		b.Rung, b.Phrase = RungYear, "a year"
	case b.Days >= 45:
		b.Rung, b.Phrase = RungMonths, fmt.Sprintf("%d months", b.Months)
	case b.Days >= 30:
		b.Rung, b.Phrase = RungMonth, "a month"
	case b.Hours >= 36:
		b.Rung, b.Phrase = RungDays, fmt.Sprintf("%d days", b.Days)
	case b.Hours >= 24:
		b.Rung, b.Phrase = RungDay, "a day"
	case b.Minutes >= 90:
		b.Rung, b.Phrase = RungHours, fmt.Sprintf("%d hours", b.Hours)
	case b.Minutes >= 45:
		b.Rung, b.Phrase = RungHour, "an hour"
	case b.Seconds >= 90:
		b.Rung, b.Phrase = RungMinutes, fmt.Sprintf("%d minutes", b.Minutes)
	case b.Seconds >= 45:
		b.Rung, b.Phrase = RungMinute, "a minute"
	case b.Seconds >= 10:
		b.Rung, b.Phrase = RungSeconds, fmt.Sprintf("%d seconds", b.Seconds)
	default:
		b.Rung, b.Phrase = RungJustNow, JustNow
	}
	return b
}

// String renders the tense-qualified phrase. "just now" never carries a tense.
func (b Breakdown) String() string {
	if b.Phrase == JustNow {
		return b.Phrase
	}
	return b.Phrase + " " + b.Tense
}

// Humanize converts a signed millisecond delta into a coarse phrase such as
// "3 days ago" or "an hour until".
func Humanize(deltaMs int64) string {
	return Explain(deltaMs).String()
}

// roundDiv rounds n/d half up without overflowing near the top of the range.
func roundDiv(n, d uint64) uint64 {
	q, r := n/d, n%d
	if 2*r >= d {
		q++
	}
	return q
}

// magnitude returns |n|, including for math.MinInt64.
func magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}
