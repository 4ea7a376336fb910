// Package admin wires the ReWear admin API client from configuration: the
// token store, the refreshing transport, the JSON API client and the session
// controller.
//
// Example:
//
//	cfg, err := config.Load(ctx, "admin.yaml")
//	if err != nil {
//		return err
//	}
//	rewear, err := admin.New(cfg, admin.WithNavigator(navigator))
//	if err != nil {
//		return err
//	}
//	if result := rewear.Session.Login(ctx, email, password); !result.Success {
//		return errors.New(result.Error)
//	}
//	stats, err := rewear.Stats(ctx)
package admin
