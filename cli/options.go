package cli

import "github.com/rewear/admin/schema"

type Options struct {
	Config   string `short:"c" long:"config" description:"config file URL"`
	BaseURL  string `short:"u" long:"base-url" description:"API base URL"`
	Store    string `short:"s" long:"store" description:"token store, defaults to a file in the user config directory" choice:"memory" choice:"file" choice:"redis"`
	StoreURL string `long:"store-url" description:"token file URL for the file store"`
	Verbose  bool   `short:"v" long:"verbose" description:"debug logging"`

	Login         LoginCmd        `command:"login" description:"sign in as admin"`
	Logout        struct{}        `command:"logout" description:"sign out"`
	WhoAmI        struct{}        `command:"whoami" description:"print the signed-in user"`
	Stats         struct{}        `command:"stats" description:"print dashboard stats"`
	Users         ListCmd         `command:"users" description:"list users"`
	Items         ListCmd         `command:"items" description:"list items"`
	Orders        ListCmd         `command:"orders" description:"list orders"`
	Deliveries    ListCmd         `command:"deliveries" description:"list deliveries"`
	Charities     ListCmd         `command:"charities" description:"list charities"`
	Drivers       ListCmd         `command:"drivers" description:"list driver applications"`
	ApproveDriver DriverCmd       `command:"approve-driver" description:"approve a driver application"`
	RejectDriver  RejectDriverCmd `command:"reject-driver" description:"reject a driver application"`
}

type LoginCmd struct {
	Email    string `short:"e" long:"email" description:"admin email" required:"true"`
	Password string `short:"p" long:"password" description:"admin password" required:"true"`
}

type ListCmd struct {
	schema.ListParams
}

type DriverArgs struct {
	ID int `positional-arg-name:"id" description:"driver id"`
}

type DriverCmd struct {
	Args DriverArgs `positional-args:"yes" required:"yes"`
}

type RejectDriverCmd struct {
	Args   DriverArgs `positional-args:"yes" required:"yes"`
	Reason string     `short:"r" long:"reason" description:"rejection reason" required:"true"`
}
