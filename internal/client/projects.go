package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"opensilex-client/internal/models"
)

const projectsEndpoint = "/core/projects"

// ProjectSearch filters a project search.
type ProjectSearch struct {
	Name     string
	Year     int
	Keyword  string
	OrderBy  []string
	Page     int
	PageSize int
}

func (s ProjectSearch) values() url.Values {
	v := pageValues(s.Page, s.PageSize)
	if s.Name != "" {
		v.Set("name", s.Name)
	}
	if s.Year > 0 {
		v.Set("year", strconv.Itoa(s.Year))
	}
	if s.Keyword != "" {
		v.Set("keyword", s.Keyword)
	}
	for _, o := range s.OrderBy {
		v.Add("order_by", o)
	}
	return v
}

// SearchProjects lists projects matching the search filters.
func (c *Client) SearchProjects(ctx context.Context, search ProjectSearch) (*Response, error) {
	return c.Get(ctx, projectsEndpoint, search.values())
}

// GetProject fetches a single project by URI.
func (c *Client) GetProject(ctx context.Context, uri string) (*Response, error) {
	return c.Get(ctx, projectsEndpoint+"/"+url.PathEscape(uri), nil)
}

// GetProjectsByURIs fetches several projects in one call.
func (c *Client) GetProjectsByURIs(ctx context.Context, uris []string) (*Response, error) {
	v := url.Values{}
	for _, u := range uris {
		v.Add("uris", u)
	}
	return c.Get(ctx, projectsEndpoint+"/by_uris", v)
}

// CreateProject creates a project after validating the payload.
func (c *Client) CreateProject(ctx context.Context, project models.ProjectCreation) (*Response, error) {
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}
	return c.Post(ctx, projectsEndpoint, project, nil)
}

// UpdateProject updates an existing project.
func (c *Client) UpdateProject(ctx context.Context, project models.ProjectCreation) (*Response, error) {
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}
	return c.Put(ctx, projectsEndpoint, project, nil)
}

// DeleteProject removes a project by URI.
func (c *Client) DeleteProject(ctx context.Context, uri string) (*Response, error) {
	return c.Delete(ctx, projectsEndpoint+"/"+url.PathEscape(uri), nil)
}
