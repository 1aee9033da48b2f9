// Package resolve turns user supplied names or IDs into canonical resource IDs.
package resolve

import (
	"errors"
	"log/slog"

	"github.com/marmos91/netctl/pkg/resource"
)

// Resource is the minimal view of a catalog entry needed for resolution.
type Resource struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Catalog looks resources up against the live service.
//
// FetchByID must return an error matching ErrNotFound when no resource has
// the given ID. Any other error is treated as a transport failure.
type Catalog interface {
	FetchByID(kind resource.Kind, id string) (*Resource, error)
	ListByName(kind resource.Kind, name string) ([]Resource, error)
}

// Resolver resolves name-or-ID tokens against a Catalog.
type Resolver struct {
	catalog Catalog
	log     *slog.Logger
}

// New creates a Resolver. A nil logger discards log output.
func New(catalog Catalog, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Resolver{catalog: catalog, log: log}
}

// Resolve returns the canonical ID for token.
//
// The token is always tried as an ID first; names are consulted only when
// the kind allows them and no resource has that ID.
func (r *Resolver) Resolve(kind resource.Kind, token string) (string, error) {
	res, err := r.catalog.FetchByID(kind, token)
	switch {
	case err == nil:
		r.log.Debug("resolved by id", "kind", kind.Name, "id", res.ID)
		return res.ID, nil
	case !errors.Is(err, ErrNotFound):
		return "", &Error{Kind: kind.Name, Token: token, Reason: TransportFailure, Err: err}
	case !kind.AllowNames:
		return "", &Error{Kind: kind.Name, Token: token, Reason: NotFound}
	}

	matches, err := r.catalog.ListByName(kind, token)
	if err != nil {
		return "", &Error{Kind: kind.Name, Token: token, Reason: TransportFailure, Err: err}
	}

	switch len(matches) {
	case 0:
		return "", &Error{Kind: kind.Name, Token: token, Reason: NotFound}
	case 1:
		r.log.Debug("resolved by name", "kind", kind.Name, "name", token, "id", matches[0].ID)
		return matches[0].ID, nil
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.ID
		}
		return "", &Error{Kind: kind.Name, Token: token, Reason: Ambiguous, Candidates: ids}
	}
}

// ResolveOptional resolves token, returning "" without a lookup when token
// is empty.
func (r *Resolver) ResolveOptional(kind resource.Kind, token string) (string, error) {
	if token == "" {
		return "", nil
	}
	return r.Resolve(kind, token)
}
