package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rewear/admin"
)

// Service executes commands against the admin API.
type Service struct {
	admin *admin.Admin
	out   io.Writer
}

func (s *Service) print(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, string(data))
	return err
}

// Execute runs the named command.
func (s *Service) Execute(ctx context.Context, command string, options *Options) error {
	api := s.admin
	switch command {
	case "login":
		result := api.Session.Login(ctx, options.Login.Email, options.Login.Password)
		if !result.Success {
			return fmt.Errorf("login failed: %v", result.Error)
		}
		return s.print(api.Session.User())
	case "logout":
		api.Session.Logout(ctx)
		return nil
	}

	// remaining commands need a signed-in user
	if err := api.Session.Restore(ctx); err != nil {
		return err
	}
	if !api.Session.IsAuthenticated() {
		return fmt.Errorf("not signed in, run: rewear-admin login -e <email> -p <password>")
	}
	var result interface{}
	var err error
	switch command {
	case "whoami":
		result = api.Session.User()
	case "stats":
		result, err = api.Stats(ctx)
	case "users":
		result, err = api.ListUsers(ctx, &options.Users.ListParams)
	case "items":
		result, err = api.ListItems(ctx, &options.Items.ListParams)
	case "orders":
		result, err = api.ListOrders(ctx, &options.Orders.ListParams)
	case "deliveries":
		result, err = api.ListDeliveries(ctx, &options.Deliveries.ListParams)
	case "charities":
		result, err = api.ListCharities(ctx, &options.Charities.ListParams)
	case "drivers":
		result, err = api.ListDriverApplications(ctx, &options.Drivers.ListParams)
	case "approve-driver":
		err = api.ApproveDriver(ctx, options.ApproveDriver.Args.ID)
		result = map[string]interface{}{"approved": options.ApproveDriver.Args.ID}
	case "reject-driver":
		err = api.RejectDriver(ctx, options.RejectDriver.Args.ID, options.RejectDriver.Reason)
		result = map[string]interface{}{"rejected": options.RejectDriver.Args.ID}
	default:
		return fmt.Errorf("unsupported command: %v", command)
	}
	if err != nil {
		return err
	}
	return s.print(result)
}
