package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"

	"opensilex-client/internal/models"
)

const (
	dataEndpoint = "/core/data"

	// dataBatchSize caps how many points go into one create call.
	dataBatchSize = 100
)

// DataSearch filters a data search.
type DataSearch struct {
	Experiment string
	Variable   string
	Target     string
	StartDate  string
	EndDate    string
	OrderBy    []string
	Page       int
	PageSize   int
}

func (s DataSearch) values() url.Values {
	v := pageValues(s.Page, s.PageSize)
	if s.Experiment != "" {
		v.Set("experiment", s.Experiment)
	}
	if s.Variable != "" {
		v.Set("variable", s.Variable)
	}
	if s.Target != "" {
		v.Set("target", s.Target)
	}
	if s.StartDate != "" {
		v.Set("start_date", s.StartDate)
	}
	if s.EndDate != "" {
		v.Set("end_date", s.EndDate)
	}
	for _, o := range s.OrderBy {
		v.Add("order_by", o)
	}
	return v
}

// SearchData lists measurement data matching the filters.
func (c *Client) SearchData(ctx context.Context, search DataSearch) (*Response, error) {
	return c.Get(ctx, dataEndpoint, search.values())
}

// SearchAllData walks every page of a data search and returns the
// combined result list. It stops on the first short page.
func (c *Client) SearchAllData(ctx context.Context, search DataSearch) ([]any, error) {
	if search.PageSize <= 0 {
		search.PageSize = 50
	}
	search.Page = 0

	var all []any
	for {
		resp, err := c.SearchData(ctx, search)
		if err != nil {
			return all, err
		}
		if !resp.Success {
			return all, fmt.Errorf("data search failed on page %d: %s", search.Page, responseFailure(resp))
		}
		if resp.Data == nil {
			return all, nil
		}
		items, ok := resp.Data.([]any)
		if !ok {
			return all, fmt.Errorf("data search page %d: unexpected payload %T", search.Page, resp.Data)
		}
		if len(items) == 0 {
			return all, nil
		}
		all = append(all, items...)
		if len(items) < search.PageSize {
			return all, nil
		}
		search.Page++
	}
}

// CreateData posts a list of data points in a single call after
// validating each point.
func (c *Client) CreateData(ctx context.Context, points []models.DataPoint) (*Response, error) {
	for i, p := range points {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid data point %d: %w", i, err)
		}
	}
	return c.Post(ctx, dataEndpoint, points, nil)
}

// CreateDataBatches uploads points in chunks of dataBatchSize,
// continuing past failed chunks. It returns how many points were
// accepted and the accumulated failures, if any.
func (c *Client) CreateDataBatches(ctx context.Context, points []models.DataPoint) (int, error) {
	var failures *multierror.Error
	created := 0

	for i := 0; i < len(points); i += dataBatchSize {
		end := min(i+dataBatchSize, len(points))
		batch := points[i:end]
		batchNum := i/dataBatchSize + 1

		resp, err := c.CreateData(ctx, batch)
		if err != nil {
			failures = multierror.Append(failures, fmt.Errorf("batch %d: %w", batchNum, err))
			continue
		}
		if !resp.Success {
			failures = multierror.Append(failures, fmt.Errorf("batch %d rejected: %s", batchNum, responseFailure(resp)))
			continue
		}
		created += len(batch)
	}

	return created, failures.ErrorOrNil()
}

// responseFailure summarizes a failed response for error messages.
func responseFailure(resp *Response) string {
	if len(resp.Errors) > 0 {
		return strings.Join(resp.Errors, "; ")
	}
	return resp.Message
}
