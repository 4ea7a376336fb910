package client

import (
	"context"

	"github.com/rewear/admin/schema"
)

func (c *Client) ListOrders(ctx context.Context, params *schema.ListParams) (*schema.Page[schema.Order], error) {
	page := &schema.Page[schema.Order]{}
	if err := c.Get(ctx, "/orders", params.Values(), page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID int) (*schema.Order, error) {
	order := &schema.Order{}
	if err := c.Get(ctx, idPath("/orders", orderID), nil, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int, status string) (*schema.Order, error) {
	order := &schema.Order{}
	if err := c.Put(ctx, idPath("/orders", orderID), &schema.OrderStatusUpdate{Status: status}, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (c *Client) CancelOrder(ctx context.Context, orderID int, reason string) (*schema.Order, error) {
	order := &schema.Order{}
	if err := c.Put(ctx, idPath("/orders", orderID, "cancel"), &schema.Reason{Reason: reason}, order); err != nil {
		return nil, err
	}
	return order, nil
}
