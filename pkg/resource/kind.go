// Package resource describes the resource kinds exposed by the networking
// service REST API.
package resource

import (
	"fmt"
	"net/url"
)

// APIPrefix is the path prefix of every networking service endpoint.
const APIPrefix = "/v2.0"

// Kind describes one resource type of the networking service.
type Kind struct {
	// Name is the singular key used in request and response bodies ("host").
	Name string
	// Plural is the collection key used in list responses ("hosts").
	Plural string
	// Path is the collection path relative to the API root.
	Path string
	// AllowNames reports whether a display name may be given in place of an ID.
	AllowNames bool
}

// String returns the singular name of the kind.
func (k Kind) String() string {
	return k.Name
}

// CollectionPath returns the absolute path of the collection.
func (k Kind) CollectionPath() string {
	return APIPrefix + k.Path
}

// ItemPath returns the absolute path of a single resource. The id is
// path-escaped so that arbitrary name tokens cannot alter the path.
func (k Kind) ItemPath(id string) string {
	return fmt.Sprintf("%s/%s", k.CollectionPath(), url.PathEscape(id))
}

var (
	Host = Kind{Name: "host", Plural: "hosts", Path: "/hosts", AllowNames: true}

	Router = Kind{Name: "router", Plural: "routers", Path: "/routers", AllowNames: true}

	Network = Kind{Name: "network", Plural: "networks", Path: "/networks", AllowNames: true}

	PortForwarding = Kind{Name: "portforwarding", Plural: "portforwardings", Path: "/portforwardings", AllowNames: true}

	ProviderNet = Kind{Name: "providernet", Plural: "providernets", Path: "/providernets", AllowNames: true}

	ProviderNetType = Kind{Name: "providernet_type", Plural: "providernet_types", Path: "/providernet-types"}

	ProviderNetRange = Kind{Name: "providernet_range", Plural: "providernet_ranges", Path: "/providernet-ranges", AllowNames: true}

	ConnectivityTest = Kind{
		Name:   "providernet_connectivity_test",
		Plural: "providernet_connectivity_tests",
		Path:   "/providernet-connectivity-tests",
	}

	QoS = Kind{Name: "qos", Plural: "qoses", Path: "/qoses", AllowNames: true}

	Setting = Kind{Name: "setting", Plural: "settings", Path: "/settings"}
)

// All lists every known kind.
var All = []Kind{
	Host, Router, Network, PortForwarding, ProviderNet, ProviderNetType,
	ProviderNetRange, ConnectivityTest, QoS, Setting,
}
