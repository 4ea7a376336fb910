package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rewear/admin/schema"
)

func idPath(prefix string, id int, suffix ...string) string {
	ret := prefix + "/" + url.PathEscape(strconv.Itoa(id))
	for _, s := range suffix {
		ret += "/" + s
	}
	return ret
}

func (c *Client) Stats(ctx context.Context) (*schema.Stats, error) {
	stats := &schema.Stats{}
	if err := c.Get(ctx, "/admin/stats", nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *Client) ListUsers(ctx context.Context, params *schema.ListParams) (*schema.Page[schema.User], error) {
	page := &schema.Page[schema.User]{}
	if err := c.Get(ctx, "/admin/users", params.Values(), page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *Client) DeleteUser(ctx context.Context, userID int) error {
	return c.Delete(ctx, idPath("/admin/users", userID), nil)
}

func (c *Client) ListCharities(ctx context.Context, params *schema.ListParams) (*schema.Page[schema.Charity], error) {
	page := &schema.Page[schema.Charity]{}
	if err := c.Get(ctx, "/admin/charities", params.Values(), page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *Client) CreateCharity(ctx context.Context, request *schema.CreateCharityRequest) (*schema.Charity, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	charity := &schema.Charity{}
	if err := c.Post(ctx, "/admin/charity/create", request, charity); err != nil {
		return nil, err
	}
	return charity, nil
}

func (c *Client) ListDriverApplications(ctx context.Context, params *schema.ListParams) (*schema.Page[schema.DriverApplication], error) {
	page := &schema.Page[schema.DriverApplication]{}
	if err := c.Get(ctx, "/admin/driver-applications", params.Values(), page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *Client) ApproveDriver(ctx context.Context, driverID int) error {
	return c.Post(ctx, idPath("/admin/drivers", driverID, "approve"), nil, nil)
}

func (c *Client) RejectDriver(ctx context.Context, driverID int, reason string) error {
	return c.Post(ctx, idPath("/admin/drivers", driverID, "reject"), &schema.Reason{Reason: reason}, nil)
}
