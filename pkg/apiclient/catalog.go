package apiclient

import (
	"net/url"

	"github.com/marmos91/netctl/pkg/resolve"
	"github.com/marmos91/netctl/pkg/resource"
)

// Catalog adapts a Client to resolve.Catalog.
type Catalog struct {
	client *Client
}

// Catalog returns a resolve.Catalog backed by this client.
func (c *Client) Catalog() *Catalog {
	return &Catalog{client: c}
}

var lookupFields = url.Values{"fields": []string{"id", "name"}}

// FetchByID fetches the id and name of one resource. A 404 is reported as
// resolve.ErrNotFound.
func (cat *Catalog) FetchByID(kind resource.Kind, id string) (*resolve.Resource, error) {
	r, err := getResource[resolve.Resource](cat.client, kind, id, lookupFields)
	if err != nil {
		if IsNotFound(err) {
			return nil, resolve.ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

// ListByName lists resources whose name equals name.
func (cat *Catalog) ListByName(kind resource.Kind, name string) ([]resolve.Resource, error) {
	return listResources[resolve.Resource](cat.client, kind, &ListOptions{
		Fields:  []string{"id", "name"},
		Filters: map[string]string{"name": name},
	})
}
