// Package attrs maps formatting attributes to locale options.
package attrs

import (
	"github.com/brandonbloom/dtfmt/internal/locale"
)

// Attribute names recognized by Resolve.
const (
	Weekday      = "weekday"
	Day          = "day"
	Month        = "month"
	Year         = "year"
	Hour         = "hour"
	Minute       = "minute"
	Second       = "second"
	TimeZoneName = "timeZoneName"
)

var (
	textStyles    = []string{locale.Short, locale.Long}
	numericStyles = []string{locale.Numeric, locale.TwoDigit}
)

type field struct {
	name    string
	allowed []string
	target  func(*locale.Options) *string
}

var fields = []field{
	{Weekday, textStyles, func(o *locale.Options) *string { return &o.Weekday }},
	{Day, numericStyles, func(o *locale.Options) *string { return &o.Day }},
	{Month, textStyles, func(o *locale.Options) *string { return &o.Month }},
	{Year, numericStyles, func(o *locale.Options) *string { return &o.Year }},
	{Hour, numericStyles, func(o *locale.Options) *string { return &o.Hour }},
	{Minute, numericStyles, func(o *locale.Options) *string { return &o.Minute }},
	{Second, numericStyles, func(o *locale.Options) *string { return &o.Second }},
	{TimeZoneName, textStyles, func(o *locale.Options) *string { return &o.TimeZoneName }},
}

// Set holds raw attribute values. Values need not be recognized.
type Set map[string]string

// Clone returns a copy that can be modified independently.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Names lists the recognized attribute names in resolution order.
func Names() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// Allowed returns the values accepted for name, or nil for unknown names.
func Allowed(name string) []string {
	for _, f := range fields {
		if f.name == name {
			return append([]string(nil), f.allowed...)
		}
	}
	return nil
}

// Resolve copies each recognized attribute holding an allowed value into
// the options record. Anything else is omitted.
func Resolve(set Set) locale.Options {
	var opts locale.Options
	for _, f := range fields {
		value, ok := set[f.name]
		if !ok || !contains(f.allowed, value) {
			continue
		}
		*f.target(&opts) = value
	}
	return opts
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
