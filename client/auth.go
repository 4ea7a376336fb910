package client

import (
	"context"

	"github.com/rewear/admin/schema"
)

const (
	PathLogin        = "/auth/login"
	PathLogout       = "/auth/logout"
	PathMe           = "/auth/me"
	PathRefreshToken = "/auth/refresh-token"
)

func (c *Client) Login(ctx context.Context, email, password string) (*schema.LoginResult, error) {
	result := &schema.LoginResult{}
	if err := c.Post(ctx, PathLogin, &schema.LoginRequest{Email: email, Password: password}, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.Post(ctx, PathLogout, nil, nil)
}

func (c *Client) Me(ctx context.Context) (*schema.User, error) {
	user := &schema.User{}
	if err := c.Get(ctx, PathMe, nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RefreshToken calls the refresh endpoint directly. The authenticated
// transport performs refreshes on its own; this is for tooling.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*schema.TokenPair, error) {
	pair := &schema.TokenPair{}
	if err := c.Post(ctx, PathRefreshToken, &schema.RefreshRequest{RefreshToken: refreshToken}, pair); err != nil {
		return nil, err
	}
	return pair, nil
}
