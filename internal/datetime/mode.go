package datetime

// Kind enumerates the rendering branches.
type Kind int

const (
	// Local renders an absolute, locale-aware string.
	Local Kind = iota
	// Relative renders a humanized offset from now.
	Relative
	// Other renders the raw instant.
	Other
)

// Type attribute spellings for the Local and Relative kinds. Any other
// spelling selects Other.
const (
	LocalName    = "local"
	RelativeName = "relative"
)

// Mode is a parsed type attribute. Raw keeps the original spelling so an
// unrecognized mode can still be reported as given.
type Mode struct {
	Kind Kind
	Raw  string
}

// ParseMode classifies s. The empty string selects Local.
func ParseMode(s string) Mode {
	switch s {
	case "", LocalName:
		return Mode{Kind: Local, Raw: LocalName}
	case RelativeName:
		return Mode{Kind: Relative, Raw: RelativeName}
	default:
		return Mode{Kind: Other, Raw: s}
	}
}

func (m Mode) String() string {
	if m.Raw == "" && m.Kind == Local {
		return LocalName
	}
	return m.Raw
}
