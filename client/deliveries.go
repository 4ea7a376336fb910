package client

import (
	"context"

	"github.com/rewear/admin/schema"
)

func (c *Client) ListDeliveries(ctx context.Context, params *schema.ListParams) (*schema.Page[schema.Delivery], error) {
	page := &schema.Page[schema.Delivery]{}
	if err := c.Get(ctx, "/deliveries", params.Values(), page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *Client) GetDelivery(ctx context.Context, deliveryID int) (*schema.Delivery, error) {
	delivery := &schema.Delivery{}
	if err := c.Get(ctx, idPath("/deliveries", deliveryID), nil, delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}

func (c *Client) AssignDriver(ctx context.Context, deliveryID, driverID int) (*schema.Delivery, error) {
	delivery := &schema.Delivery{}
	if err := c.Post(ctx, idPath("/deliveries", deliveryID, "assign"), &schema.DriverAssignment{DriverID: driverID}, delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}
