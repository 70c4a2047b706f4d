package datetime

import (
	"sync"

	"github.com/brandonbloom/dtfmt/internal/attrs"
	"github.com/rs/zerolog"
)

// Element is the display-side adapter: it owns one Normalizer, a type
// attribute and a set of formatting attributes, and re-renders through
// the Dispatcher whenever the instant or type changes.
type Element struct {
	dispatcher *Dispatcher
	normalizer *Normalizer
	log        zerolog.Logger
	render     func(string)

	mu    sync.Mutex
	mode  string
	attrs attrs.Set
	text  string
}

// ElementOption configures an Element.
type ElementOption func(*Element)

// WithLogger sets the logger used for render decisions.
func WithLogger(log zerolog.Logger) ElementOption {
	return func(e *Element) { e.log = log }
}

// WithRender registers fn to receive every rendered string. It runs while
// the element is locked and must not call back into the element.
func WithRender(fn func(string)) ElementOption {
	return func(e *Element) { e.render = fn }
}

// WithType sets the initial type attribute.
func WithType(mode string) ElementOption {
	return func(e *Element) { e.mode = mode }
}

// WithAttributes seeds the formatting attributes.
func WithAttributes(set attrs.Set) ElementOption {
	return func(e *Element) { e.attrs = set.Clone() }
}

// NewElement constructs an element with no datetime set.
func NewElement(dispatcher *Dispatcher, parser Parser, opts ...ElementOption) *Element {
	e := &Element{
		dispatcher: dispatcher,
		normalizer: NewNormalizer(parser),
		log:        zerolog.Nop(),
		attrs:      attrs.Set{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetDatetime stores raw as the element's instant and re-renders unless
// the normalizer reports no change. The update and render happen under one
// lock, so Text always reflects Datetime.
func (e *Element) SetDatetime(raw string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	instant, changed := e.normalizer.Update(raw)
	if !changed {
		e.log.Debug().Str("datetime", raw).Msg("instant unchanged; skipping render")
		return nil
	}
	return e.renderLocked(instant)
}

// Datetime returns the current instant, Invalid if none was set.
func (e *Element) Datetime() Instant {
	instant, _ := e.normalizer.Current()
	return instant
}

// Type returns the type attribute, defaulting to "local".
func (e *Element) Type() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ParseMode(e.mode).String()
}

// SetType changes the rendering mode and re-renders if a datetime is set.
func (e *Element) SetType(mode string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = mode
	instant, ok := e.normalizer.Current()
	if !ok {
		return nil
	}
	return e.renderLocked(instant)
}

// SetAttribute stores a formatting attribute; it applies on the next render.
func (e *Element) SetAttribute(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attrs[name] = value
}

// RemoveAttribute clears a formatting attribute.
func (e *Element) RemoveAttribute(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.attrs, name)
}

// Refresh re-renders the current instant. It is a no-op before the first
// SetDatetime.
func (e *Element) Refresh() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	instant, ok := e.normalizer.Current()
	if !ok {
		return nil
	}
	return e.renderLocked(instant)
}

// Text returns the most recently rendered string.
func (e *Element) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

func (e *Element) renderLocked(instant Instant) error {
	mode := ParseMode(e.mode)
	text, err := e.dispatcher.Format(mode, instant, attrs.Resolve(e.attrs))
	if err != nil {
		return err
	}
	e.log.Debug().
		Str("mode", mode.String()).
		Stringer("instant", instant).
		Str("text", text).
		Msg("rendered")
	e.text = text
	if e.render != nil {
		e.render(text)
	}
	return nil
}
