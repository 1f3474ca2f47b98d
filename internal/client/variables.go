package client

import (
	"context"
	"fmt"
	"net/url"

	"opensilex-client/internal/models"
)

const (
	variablesEndpoint = "/core/variables"
	entitiesEndpoint  = "/core/entities"
)

// VariableSearch filters a variable search.
type VariableSearch struct {
	Name     string
	OrderBy  []string
	Page     int
	PageSize int
}

func (s VariableSearch) values() url.Values {
	v := pageValues(s.Page, s.PageSize)
	if s.Name != "" {
		v.Set("name", s.Name)
	}
	for _, o := range s.OrderBy {
		v.Add("order_by", o)
	}
	return v
}

// SearchVariables lists measurement variables matching the filters.
func (c *Client) SearchVariables(ctx context.Context, search VariableSearch) (*Response, error) {
	return c.Get(ctx, variablesEndpoint, search.values())
}

// GetVariable fetches a single variable by URI.
func (c *Client) GetVariable(ctx context.Context, uri string) (*Response, error) {
	return c.Get(ctx, variablesEndpoint+"/"+url.PathEscape(uri), nil)
}

// CreateVariable creates a variable after validating the payload.
func (c *Client) CreateVariable(ctx context.Context, variable models.VariableCreation) (*Response, error) {
	if err := variable.Validate(); err != nil {
		return nil, fmt.Errorf("invalid variable: %w", err)
	}
	return c.Post(ctx, variablesEndpoint, variable, nil)
}

// VariableDatatypes lists the data types a variable may use.
func (c *Client) VariableDatatypes(ctx context.Context) (*Response, error) {
	return c.Get(ctx, variablesEndpoint+"/datatypes", nil)
}

// SearchEntities lists variable entities (the observed things).
func (c *Client) SearchEntities(ctx context.Context, name string, page, pageSize int) (*Response, error) {
	v := pageValues(page, pageSize)
	if name != "" {
		v.Set("name", name)
	}
	return c.Get(ctx, entitiesEndpoint, v)
}

// CreateEntity creates a variable entity after validating the payload.
func (c *Client) CreateEntity(ctx context.Context, entity models.EntityCreation) (*Response, error) {
	if err := entity.Validate(); err != nil {
		return nil, fmt.Errorf("invalid entity: %w", err)
	}
	return c.Post(ctx, entitiesEndpoint, entity, nil)
}
