package config

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// Config carries the vCenter endpoint settings. Flags take precedence over
// the environment; the environment is how schedulers usually hand
// credentials to plugins without exposing them in the process list.
type Config struct {
	URL      string `envconfig:"VSPHERE_URL" default:""`
	Username string `envconfig:"VSPHERE_USERNAME" default:""`
	Password string `envconfig:"VSPHERE_PASSWORD" default:""`
	Insecure bool   `envconfig:"VSPHERE_INSECURE" default:"false"`
	LogLevel string `envconfig:"CHECK_VSPHERE_LOG_LEVEL" default:"warn"`
}

func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("vCenter URL is not set")
	}
	if c.Username == "" || c.Password == "" {
		return errors.New("vCenter credentials are not set")
	}
	return nil
}
