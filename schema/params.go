package schema

import (
	"net/url"
	"strconv"
)

// ListParams filters a list endpoint. Zero values are not sent.
type ListParams struct {
	Page     int    `short:"P" long:"page" description:"page number"`
	PerPage  int    `long:"per-page" description:"page size"`
	Search   string `short:"q" long:"search" description:"search term"`
	Status   string `long:"status" description:"status filter"`
	Category string `long:"category" description:"item category filter"`
	UserType string `long:"user-type" description:"user type filter"`
}

// Values encodes the params as a query string.
func (p *ListParams) Values() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(p.PerPage))
	}
	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}
	set("search", p.Search)
	set("status", p.Status)
	set("category", p.Category)
	set("user_type", p.UserType)
	return values
}
