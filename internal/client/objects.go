package client

import (
	"context"
	"fmt"
	"net/url"

	"opensilex-client/internal/models"
)

const objectsEndpoint = "/core/scientific_objects"

// ScientificObjectSearch filters a scientific object search.
type ScientificObjectSearch struct {
	Name       string
	RDFTypes   []string
	Experiment string
	Parent     string
	Germplasm  []string
	OrderBy    []string
	Page       int
	PageSize   int
}

func (s ScientificObjectSearch) values() url.Values {
	v := pageValues(s.Page, s.PageSize)
	if s.Name != "" {
		v.Set("name", s.Name)
	}
	for _, t := range s.RDFTypes {
		v.Add("rdf_types", t)
	}
	if s.Experiment != "" {
		v.Set("experiment", s.Experiment)
	}
	if s.Parent != "" {
		v.Set("parent", s.Parent)
	}
	for _, g := range s.Germplasm {
		v.Add("germplasm", g)
	}
	for _, o := range s.OrderBy {
		v.Add("order_by", o)
	}
	return v
}

// SearchScientificObjects lists scientific objects (plots, plants, ...)
// matching the search filters.
func (c *Client) SearchScientificObjects(ctx context.Context, search ScientificObjectSearch) (*Response, error) {
	return c.Get(ctx, objectsEndpoint, search.values())
}

// GetScientificObject fetches a single scientific object by URI.
func (c *Client) GetScientificObject(ctx context.Context, uri string) (*Response, error) {
	return c.Get(ctx, objectsEndpoint+"/"+url.PathEscape(uri), nil)
}

// GetScientificObjectsByURIs fetches several scientific objects in one
// call.
func (c *Client) GetScientificObjectsByURIs(ctx context.Context, uris []string) (*Response, error) {
	v := url.Values{}
	for _, u := range uris {
		v.Add("uris", u)
	}
	return c.Get(ctx, objectsEndpoint+"/by_uris", v)
}

// CreateScientificObject creates a scientific object after validating
// the payload.
func (c *Client) CreateScientificObject(ctx context.Context, object models.ScientificObjectCreation) (*Response, error) {
	if err := object.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scientific object: %w", err)
	}
	return c.Post(ctx, objectsEndpoint, object, nil)
}

// UpdateScientificObject updates an existing scientific object.
func (c *Client) UpdateScientificObject(ctx context.Context, object models.ScientificObjectCreation) (*Response, error) {
	if err := object.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scientific object: %w", err)
	}
	return c.Put(ctx, objectsEndpoint, object, nil)
}

// DeleteScientificObject removes a scientific object by URI.
func (c *Client) DeleteScientificObject(ctx context.Context, uri string) (*Response, error) {
	return c.Delete(ctx, objectsEndpoint+"/"+url.PathEscape(uri), nil)
}
