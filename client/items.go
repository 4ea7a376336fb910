package client

import (
	"context"

	"github.com/rewear/admin/schema"
)

func (c *Client) ListItems(ctx context.Context, params *schema.ListParams) (*schema.Page[schema.Item], error) {
	page := &schema.Page[schema.Item]{}
	if err := c.Get(ctx, "/items", params.Values(), page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *Client) GetItem(ctx context.Context, itemID int) (*schema.Item, error) {
	item := &schema.Item{}
	if err := c.Get(ctx, idPath("/items", itemID), nil, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (c *Client) DeleteItem(ctx context.Context, itemID int) error {
	return c.Delete(ctx, idPath("/items", itemID), nil)
}

func (c *Client) UpdateItem(ctx context.Context, itemID int, update *schema.ItemUpdate) (*schema.Item, error) {
	item := &schema.Item{}
	if err := c.Put(ctx, idPath("/items", itemID), update, item); err != nil {
		return nil, err
	}
	return item, nil
}
