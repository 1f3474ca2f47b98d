package client

import (
	"net/url"
	"strconv"
)

const defaultPageSize = 20

// pageValues starts a query with the pagination parameters every
// search endpoint accepts.
func pageValues(page, pageSize int) url.Values {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("page_size", strconv.Itoa(pageSize))
	return v
}
