// Package config holds the configuration shared by the parseform commands.
package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/twipi/parseform/internal/cfgutil"
	"github.com/twipi/parseform/parseapi"
)

// Environment variables that override the config file.
const (
	EnvEndpoint   = "PARSEFORM_ENDPOINT"
	EnvListenAddr = "PARSEFORM_LISTEN_ADDR"
)

// Root is the root configuration.
type Root struct {
	// Endpoint is the base URL of the parsing service. The parse path is
	// appended to it. It may be given as $VAR to read it from the
	// environment.
	Endpoint cfgutil.EnvString `toml:"endpoint" json:"endpoint" yaml:"endpoint"`
	Web      Web               `toml:"web" json:"web" yaml:"web"`
}

// Web is the configuration of the web front end.
type Web struct {
	ListenAddr string `toml:"listen_addr" json:"listen_addr" yaml:"listen_addr"`
}

// Default returns the default configuration.
func Default() Root {
	return Root{
		Endpoint: parseapi.DefaultBaseURL,
		Web: Web{
			ListenAddr: ":8080",
		},
	}
}

// Load returns the default configuration overlaid with the config file at
// path, if path is not empty, and then with the environment.
func Load(path string) (*Root, error) {
	cfg := Default()

	if path != "" {
		if err := cfgutil.ParseFileInto(path, &cfg); err != nil {
			return nil, errors.Wrap(err, "failed to load config")
		}
	}

	cfg.ApplyEnv()
	return &cfg, nil
}

// LoadEnv loads .env.local and .env from the working directory into the
// environment. Earlier files win over later ones.
// It must be called before Load for the files to take effect.
func LoadEnv() error {
	return cfgutil.LoadDotEnv(".env.local", ".env")
}

// ApplyEnv overrides values with the environment variables that are set.
func (r *Root) ApplyEnv() {
	if v := os.Getenv(EnvEndpoint); v != "" {
		r.Endpoint = cfgutil.EnvString(v)
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		r.Web.ListenAddr = v
	}
}

// Validate checks that the configuration is usable.
func (r *Root) Validate() error {
	if r.Endpoint.String() == "" {
		return errors.New("missing endpoint")
	}
	return nil
}
