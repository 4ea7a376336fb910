package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/rewear/admin"
	"github.com/rewear/admin/config"
	"github.com/rewear/admin/logger"
)

const tokenFile = "rewear-admin/tokens.json"

func Run(args []string) error {
	return run(context.Background(), args, os.Stdout)
}

func run(ctx context.Context, args []string, out io.Writer, loadOptions ...config.Option) (err error) {
	options := &Options{}
	parser := flags.NewParser(options, flags.Default)
	if _, err = parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	if parser.Active == nil {
		return errors.New("command is required")
	}

	cfg, err := options.config(ctx, loadOptions...)
	if err != nil {
		return err
	}
	if options.Verbose {
		cfg.Log.Level = "debug"
	}
	if err = logger.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	api, err := admin.New(cfg, admin.WithUserAgent("rewear-admin"))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := api.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	service := &Service{admin: api, out: out}
	err = service.Execute(ctx, parser.Active.Name, options)
	return err
}

// defaults keeps tokens in a file under the user config directory so they
// outlive the process.
func defaults() *config.Config {
	ret := config.Default()
	if dir, err := os.UserConfigDir(); err == nil {
		ret.Store = config.Store{Type: config.StoreFile, URL: filepath.Join(dir, tokenFile)}
	}
	return ret
}

// config loads the configuration and applies the flags over it.
func (o *Options) config(ctx context.Context, loadOptions ...config.Option) (*config.Config, error) {
	loadOptions = append([]config.Option{config.WithDefaults(defaults())}, loadOptions...)
	cfg, err := config.Load(ctx, o.Config, loadOptions...)
	if err != nil {
		return nil, err
	}
	if err = o.apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply overrides cfg with flags.
func (o *Options) apply(cfg *config.Config) error {
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
	}
	if o.Store != "" {
		cfg.Store.Type = o.Store
	}
	if o.StoreURL != "" {
		cfg.Store.URL = o.StoreURL
		if o.Store == "" {
			cfg.Store.Type = config.StoreFile
		}
	}
	if cfg.Store.Type == config.StoreFile && cfg.Store.URL == "" {
		cfg.Store.URL = defaults().Store.URL
	}
	cfg.Init()
	return cfg.Validate()
}
