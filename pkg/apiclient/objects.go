package apiclient

import (
	"github.com/marmos91/netctl/pkg/resource"
)

// Object is a resource decoded without a fixed schema, used where every
// attribute returned by the service is shown.
type Object map[string]any

// ID returns the object's id attribute, or "" if it has none.
func (o Object) ID() string {
	id, _ := o["id"].(string)
	return id
}

// GetObject returns one resource of kind with all of its attributes.
func (c *Client) GetObject(kind resource.Kind, id string) (Object, error) {
	obj, err := getResource[Object](c, kind, id, nil)
	if err != nil {
		return nil, err
	}
	return *obj, nil
}

// ListObjects lists resources of kind with all of their attributes.
func (c *Client) ListObjects(kind resource.Kind, opts *ListOptions) ([]Object, error) {
	return listResources[Object](c, kind, opts)
}

// UpdateObject applies body to one resource of kind.
func (c *Client) UpdateObject(kind resource.Kind, id string, body map[string]any) (Object, error) {
	obj, err := updateResource[Object](c, kind, id, body)
	if err != nil {
		return nil, err
	}
	return *obj, nil
}

// DeleteObject deletes one resource of kind.
func (c *Client) DeleteObject(kind resource.Kind, id string) error {
	return deleteResource(c, kind, id)
}
