package client

import (
	"context"

	"github.com/rewear/admin/schema"
)

// Interface defines the exported admin API operations
type Interface interface {
	// Login exchanges credentials for a user and token pair
	Login(ctx context.Context, email, password string) (*schema.LoginResult, error)
	// Logout invalidates the server side session
	Logout(ctx context.Context) error
	// Me returns the signed-in user
	Me(ctx context.Context) (*schema.User, error)
	// RefreshToken rotates a token pair
	RefreshToken(ctx context.Context, refreshToken string) (*schema.TokenPair, error)

	Stats(ctx context.Context) (*schema.Stats, error)
	ListUsers(ctx context.Context, params *schema.ListParams) (*schema.Page[schema.User], error)
	DeleteUser(ctx context.Context, userID int) error
	ListCharities(ctx context.Context, params *schema.ListParams) (*schema.Page[schema.Charity], error)
	CreateCharity(ctx context.Context, request *schema.CreateCharityRequest) (*schema.Charity, error)
	ListDriverApplications(ctx context.Context, params *schema.ListParams) (*schema.Page[schema.DriverApplication], error)
	ApproveDriver(ctx context.Context, driverID int) error
	RejectDriver(ctx context.Context, driverID int, reason string) error

	ListItems(ctx context.Context, params *schema.ListParams) (*schema.Page[schema.Item], error)
	GetItem(ctx context.Context, itemID int) (*schema.Item, error)
	DeleteItem(ctx context.Context, itemID int) error
	UpdateItem(ctx context.Context, itemID int, update *schema.ItemUpdate) (*schema.Item, error)

	ListOrders(ctx context.Context, params *schema.ListParams) (*schema.Page[schema.Order], error)
	GetOrder(ctx context.Context, orderID int) (*schema.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int, status string) (*schema.Order, error)
	CancelOrder(ctx context.Context, orderID int, reason string) (*schema.Order, error)

	ListDeliveries(ctx context.Context, params *schema.ListParams) (*schema.Page[schema.Delivery], error)
	GetDelivery(ctx context.Context, deliveryID int) (*schema.Delivery, error)
	AssignDriver(ctx context.Context, deliveryID, driverID int) (*schema.Delivery, error)
}

// Ensure Client implements Interface
var _ Interface = (*Client)(nil)
