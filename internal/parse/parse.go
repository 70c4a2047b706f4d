// Package parse reads timestamps written in ISO-8601 or one of the common
// human layouts understood by dateparse.
package parse

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/brandonbloom/dtfmt/internal/datetime"
)

// Parser resolves inputs without an explicit offset in a fixed location.
type Parser struct {
	loc *time.Location
}

// New returns a Parser for loc. A nil loc means time.Local.
func New(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	return &Parser{loc: loc}
}

// Parse returns datetime.Invalid for empty or unrecognized input.
func (p *Parser) Parse(raw string) datetime.Instant {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return datetime.Invalid
	}
	t, err := dateparse.ParseIn(raw, p.loc)
	if err != nil {
		return datetime.Invalid
	}
	return datetime.FromTime(t)
}
