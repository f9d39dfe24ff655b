package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/virtomon/check-vsphere-storage/internal/config"
)

type GlobalOptions struct {
	ServerURL string
	Username  string
	Password  string
	Insecure  bool
	LogLevel  string
}

// DefaultGlobalOptions seeds the flag defaults from the environment so that
// schedulers can pass credentials via VSPHERE_* variables and keep them out
// of the command line.
func DefaultGlobalOptions() GlobalOptions {
	opts := GlobalOptions{LogLevel: "warn"}
	if cfg, err := config.New(); err == nil {
		opts.ServerURL = cfg.URL
		opts.Username = cfg.Username
		opts.Password = cfg.Password
		opts.Insecure = cfg.Insecure
		opts.LogLevel = cfg.LogLevel
	}
	return opts
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ServerURL, "server-url", "u", o.ServerURL, "vCenter or ESXi API endpoint (env VSPHERE_URL)")
	fs.StringVar(&o.Username, "username", o.Username, "API username (env VSPHERE_USERNAME)")
	fs.StringVar(&o.Password, "password", o.Password, "API password (env VSPHERE_PASSWORD)")
	fs.BoolVarP(&o.Insecure, "insecure", "k", o.Insecure, "Skip TLS certificate verification (env VSPHERE_INSECURE)")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Diagnostic log level on stderr")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if _, err := zap.ParseAtomicLevel(o.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", o.LogLevel)
	}
	return o.Config().Validate()
}

func (o *GlobalOptions) Config() *config.Config {
	return &config.Config{
		URL:      o.ServerURL,
		Username: o.Username,
		Password: o.Password,
		Insecure: o.Insecure,
		LogLevel: o.LogLevel,
	}
}
