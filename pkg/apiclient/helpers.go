package apiclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"

	"github.com/marmos91/netctl/pkg/resource"
)

// ============================================================================
// Generic API Client Helpers
// ============================================================================
//
// The networking service wraps single objects in their singular key and
// collections in their plural key ({"host": {...}}, {"hosts": [...]}).
// These helpers hide the envelopes and build paths from a resource.Kind.

// ListOptions narrows and orders a list request.
type ListOptions struct {
	// Fields limits the returned attributes.
	Fields []string
	// SortKeys and SortDirs are sent pairwise as sort_key / sort_dir.
	SortKeys []string
	SortDirs []string
	// Filters are equality filters such as name=compute-0.
	Filters map[string]string
}

// Query encodes the options as URL query parameters.
func (o *ListOptions) Query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	for _, f := range o.Fields {
		q.Add("fields", f)
	}
	for _, k := range o.SortKeys {
		q.Add("sort_key", k)
	}
	for _, d := range o.SortDirs {
		q.Add("sort_dir", d)
	}

	keys := make([]string, 0, len(o.Filters))
	for k := range o.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.Set(k, o.Filters[k])
	}
	return q
}

// withQuery appends q to path when it is non-empty.
func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// unwrap decodes the value stored under key in a response envelope.
func unwrap[T any](env map[string]json.RawMessage, key string) (*T, error) {
	raw, ok := env[key]
	if !ok {
		return nil, fmt.Errorf("response is missing %q", key)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return &out, nil
}

// getResource performs a GET on the item path of kind and decodes the
// singular envelope into T.
//
// Example:
//
//	host, err := getResource[Host](c, resource.Host, id, nil)
func getResource[T any](c *Client, kind resource.Kind, id string, q url.Values) (*T, error) {
	var env map[string]json.RawMessage
	if err := c.get(withQuery(kind.ItemPath(id), q), &env); err != nil {
		return nil, err
	}
	return unwrap[T](env, kind.Name)
}

// listResources performs a GET on the collection path of kind and decodes
// the plural envelope into a slice of T.
//
// Example:
//
//	hosts, err := listResources[Host](c, resource.Host, opts)
func listResources[T any](c *Client, kind resource.Kind, opts *ListOptions) ([]T, error) {
	return listAt[T](c, kind.CollectionPath(), kind.Plural, opts)
}

// listAt lists T from an arbitrary path whose response uses key as its
// collection envelope. A missing key yields an empty list.
func listAt[T any](c *Client, path, key string, opts *ListOptions) ([]T, error) {
	var env map[string]json.RawMessage
	if err := c.get(withQuery(path, opts.Query()), &env); err != nil {
		return nil, err
	}
	if _, ok := env[key]; !ok {
		return []T{}, nil
	}
	items, err := unwrap[[]T](env, key)
	if err != nil {
		return nil, err
	}
	return *items, nil
}

// createResource POSTs body wrapped in the singular envelope of kind and
// decodes the created object into T.
//
// Example:
//
//	host, err := createResource[Host](c, resource.Host, req)
func createResource[T any](c *Client, kind resource.Kind, body any) (*T, error) {
	var env map[string]json.RawMessage
	if err := c.post(kind.CollectionPath(), map[string]any{kind.Name: body}, &env); err != nil {
		return nil, err
	}
	return unwrap[T](env, kind.Name)
}

// updateResource PUTs body wrapped in the singular envelope of kind to the
// item path and decodes the updated object into T.
//
// Example:
//
//	host, err := updateResource[Host](c, resource.Host, id, req)
func updateResource[T any](c *Client, kind resource.Kind, id string, body any) (*T, error) {
	var env map[string]json.RawMessage
	if err := c.put(kind.ItemPath(id), map[string]any{kind.Name: body}, &env); err != nil {
		return nil, err
	}
	return unwrap[T](env, kind.Name)
}

// deleteResource performs a DELETE on the item path of kind.
//
// Example:
//
//	err := deleteResource(c, resource.Host, id)
func deleteResource(c *Client, kind resource.Kind, id string) error {
	return c.delete(kind.ItemPath(id), nil)
}

// resourcePath builds a resource path by formatting a path template with the given
// arguments using fmt.Sprintf.
//
// Example:
//
//	path := resourcePath("%s/bind_interface", resource.Host.ItemPath(id))
func resourcePath(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
