package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"opensilex-client/internal/models"
)

const experimentsEndpoint = "/core/experiments"

// ExperimentSearch filters an experiment search.
type ExperimentSearch struct {
	Name     string
	Year     int
	Project  string
	IsPublic *bool
	OrderBy  []string
	Page     int
	PageSize int
}

func (s ExperimentSearch) values() url.Values {
	v := pageValues(s.Page, s.PageSize)
	if s.Name != "" {
		v.Set("name", s.Name)
	}
	if s.Year > 0 {
		v.Set("year", strconv.Itoa(s.Year))
	}
	if s.Project != "" {
		v.Set("project", s.Project)
	}
	if s.IsPublic != nil {
		v.Set("is_public", strconv.FormatBool(*s.IsPublic))
	}
	for _, o := range s.OrderBy {
		v.Add("order_by", o)
	}
	return v
}

// SearchExperiments lists experiments matching the search filters.
func (c *Client) SearchExperiments(ctx context.Context, search ExperimentSearch) (*Response, error) {
	return c.Get(ctx, experimentsEndpoint, search.values())
}

// GetExperiment fetches a single experiment by URI.
func (c *Client) GetExperiment(ctx context.Context, uri string) (*Response, error) {
	return c.Get(ctx, experimentsEndpoint+"/"+url.PathEscape(uri), nil)
}

// CreateExperiment creates an experiment after validating the payload.
func (c *Client) CreateExperiment(ctx context.Context, experiment models.ExperimentCreation) (*Response, error) {
	if err := experiment.Validate(); err != nil {
		return nil, fmt.Errorf("invalid experiment: %w", err)
	}
	return c.Post(ctx, experimentsEndpoint, experiment, nil)
}

// UpdateExperiment updates an existing experiment.
func (c *Client) UpdateExperiment(ctx context.Context, experiment models.ExperimentCreation) (*Response, error) {
	if err := experiment.Validate(); err != nil {
		return nil, fmt.Errorf("invalid experiment: %w", err)
	}
	return c.Put(ctx, experimentsEndpoint, experiment, nil)
}

// DeleteExperiment removes an experiment by URI.
func (c *Client) DeleteExperiment(ctx context.Context, uri string) (*Response, error) {
	return c.Delete(ctx, experimentsEndpoint+"/"+url.PathEscape(uri), nil)
}
