package httputil

import (
	"strings"
)

const (
	ReasonMissing = "is missing"
	ReasonInvalid = "is invalid"
	ReasonValue   = "does not have a valid value"
)

type ParamError struct {
	Name   string
	Reason string
}

// ParamErrors collects every parameter failure of a single request in the
// order the route declares its parameters, so they can be reported together.
type ParamErrors []ParamError

func (p *ParamErrors) Add(name, reason string) {
	*p = append(*p, ParamError{Name: name, Reason: reason})
}

// Err returns nil when no failure was recorded. Returning the nil slice
// through the error interface would produce a non-nil error.
func (p ParamErrors) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}

// Error renders consecutive failures sharing a reason as one group, e.g.
// "start, end is invalid" or "year_param is invalid, month_param does not
// have a valid value".
func (p ParamErrors) Error() string {
	var groups []string
	var names []string

	for i, paramErr := range p {
		names = append(names, paramErr.Name)
		if i+1 < len(p) && p[i+1].Reason == paramErr.Reason {
			continue
		}

		groups = append(groups, strings.Join(names, ", ")+" "+paramErr.Reason)
		names = nil
	}

	return strings.Join(groups, ", ")
}
