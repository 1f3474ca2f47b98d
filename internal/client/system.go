package client

import (
	"context"
	"net/url"
)

const (
	devicesEndpoint = "/core/devices"
	eventsEndpoint  = "/core/events"
	systemEndpoint  = "/core/system/info"
)

// SystemInfo fetches server version and build information.
func (c *Client) SystemInfo(ctx context.Context) (*Response, error) {
	return c.Get(ctx, systemEndpoint, nil)
}

// SearchDevices lists devices (sensors, cameras, ...).
func (c *Client) SearchDevices(ctx context.Context, name string, page, pageSize int) (*Response, error) {
	v := pageValues(page, pageSize)
	if name != "" {
		v.Set("name", name)
	}
	return c.Get(ctx, devicesEndpoint, v)
}

// GetDevice fetches a single device by URI.
func (c *Client) GetDevice(ctx context.Context, uri string) (*Response, error) {
	return c.Get(ctx, devicesEndpoint+"/"+url.PathEscape(uri), nil)
}

// SearchEvents lists events, optionally scoped to one target
// (experiment or scientific object URI).
func (c *Client) SearchEvents(ctx context.Context, target string, page, pageSize int) (*Response, error) {
	v := pageValues(page, pageSize)
	if target != "" {
		v.Set("target", target)
	}
	return c.Get(ctx, eventsEndpoint, v)
}
