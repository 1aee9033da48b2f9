package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by a Catalog when no resource has the requested ID.
var ErrNotFound = errors.New("resource not found")

// Reason classifies why a resolution failed.
type Reason int

const (
	// NotFound means no resource matched the token by ID or by name.
	NotFound Reason = iota
	// Ambiguous means the token matched more than one resource by name.
	Ambiguous
	// TransportFailure means the catalog lookup itself failed.
	TransportFailure
)

func (r Reason) String() string {
	switch r {
	case NotFound:
		return "not found"
	case Ambiguous:
		return "ambiguous"
	case TransportFailure:
		return "transport failure"
	default:
		return "unknown"
	}
}

// Error is returned when a token cannot be resolved to a single ID.
type Error struct {
	Kind       string
	Token      string
	Reason     Reason
	Candidates []string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Reason {
	case NotFound:
		return fmt.Sprintf("unable to find %s with name or id '%s'", e.Kind, e.Token)
	case Ambiguous:
		return fmt.Sprintf("multiple %s matches found for name '%s' (%s), use an ID to be more specific",
			e.Kind, e.Token, strings.Join(e.Candidates, ", "))
	default:
		return fmt.Sprintf("failed to look up %s '%s': %v", e.Kind, e.Token, e.Err)
	}
}

// Unwrap exposes the catalog error for transport failures.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrNotFound) match a NotFound resolution.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Reason == NotFound
}

// IsNotFound reports whether err is a NotFound resolution error.
func IsNotFound(err error) bool {
	var rerr *Error
	return errors.As(err, &rerr) && rerr.Reason == NotFound
}

// IsAmbiguous reports whether err is an Ambiguous resolution error.
func IsAmbiguous(err error) bool {
	var rerr *Error
	return errors.As(err, &rerr) && rerr.Reason == Ambiguous
}
