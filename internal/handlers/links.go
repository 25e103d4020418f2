package handlers

import "fmt"

// Link is a single hypermedia reference attached to a response.
type Link struct {
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

// resourceLinks builds the standard navigation set for one entity: self,
// collection, update and delete. Callers add entity-specific entries (e.g. a
// products filter link) on top of the returned map.
func resourceLinks(resource, id string) map[string]interface{} {
	return map[string]interface{}{
		"self":       Link{Href: fmt.Sprintf("/%s/%s", resource, id)},
		"collection": Link{Href: fmt.Sprintf("/%s", resource)},
		"update":     Link{Href: fmt.Sprintf("/%s/%s", resource, id), Method: "PUT"},
		"delete":     Link{Href: fmt.Sprintf("/%s/%s", resource, id), Method: "DELETE"},
	}
}
