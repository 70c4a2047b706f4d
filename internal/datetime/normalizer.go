package datetime

import "sync"

// Parser converts raw input to an Instant, returning Invalid on failure.
type Parser interface {
	Parse(raw string) Instant
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(raw string) Instant

func (f ParserFunc) Parse(raw string) Instant { return f(raw) }

// Normalizer retains the last accepted instant and filters repeats.
type Normalizer struct {
	parser Parser

	mu     sync.Mutex
	stored Instant
	set    bool
}

// NewNormalizer returns a Normalizer with no stored instant.
func NewNormalizer(parser Parser) *Normalizer {
	return &Normalizer{parser: parser}
}

// Update parses raw and stores the result. It reports changed=false only
// when the parsed instant is truthy and equal to the stored one; invalid
// or epoch values always overwrite.
func (n *Normalizer) Update(raw string) (Instant, bool) {
	parsed := n.parser.Parse(raw)

	n.mu.Lock()
	defer n.mu.Unlock()
	if parsed.Truthy() && n.set && n.stored == parsed {
		return n.stored, false
	}
	n.stored = parsed
	n.set = true
	return parsed, true
}

// Current returns the stored instant and whether one has been set.
func (n *Normalizer) Current() (Instant, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stored, n.set
}
