// Package config loads the service configuration from a YAML file and the
// environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/juju/errors"
)

// Environment variables that override the file.
const (
	EnvListen     = "LIGHTHOUSE_LISTEN"
	EnvDatabase   = "LIGHTHOUSE_DATABASE"
	EnvLogLevel   = "LIGHTHOUSE_LOG_LEVEL"
	EnvLXDTimeout = "LIGHTHOUSE_LXD_TIMEOUT"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	LXD      LXDConfig      `yaml:"lxd"`
}

type HTTPConfig struct {
	Listen string `yaml:"listen"`
	// RedirectOnDestroy answers a successful destroy with 302 to the
	// container listing instead of 200.
	RedirectOnDestroy bool `yaml:"redirect_on_destroy"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// LXDConfig holds file paths to the client credentials; see Credentials.
type LXDConfig struct {
	Port               int           `yaml:"port"`
	ClientCert         string        `yaml:"client_cert"`
	ClientKey          string        `yaml:"client_key"`
	ServerCert         string        `yaml:"server_cert"`
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify"`
	Timeout            time.Duration `yaml:"timeout"`
	DefaultImage       string        `yaml:"default_image"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		HTTP:     HTTPConfig{Listen: ":3000", RedirectOnDestroy: true},
		Database: DatabaseConfig{Path: "lighthouse.db"},
		Log:      LogConfig{Level: "info", Format: "text"},
		LXD: LXDConfig{
			Port:         8443,
			Timeout:      30 * time.Second,
			DefaultImage: "ubuntu:22.04",
		},
	}
}

// Load reads path over the defaults and applies environment overrides. An
// empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Annotatef(err, "reading config %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Annotatef(err, "parsing config %s", path)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvListen); ok {
		c.HTTP.Listen = v
	}
	if v, ok := lookup(EnvDatabase); ok {
		c.Database.Path = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLXDTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.NotValidf("%s %q", EnvLXDTimeout, v)
		}
		c.LXD.Timeout = d
	}
	return nil
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	if c.HTTP.Listen == "" {
		return errors.NotValidf("empty http.listen")
	}
	if c.Database.Path == "" {
		return errors.NotValidf("empty database.path")
	}
	if c.LXD.Port <= 0 || c.LXD.Port > 65535 {
		return errors.NotValidf("lxd.port %s", strconv.Itoa(c.LXD.Port))
	}
	if c.LXD.Timeout <= 0 {
		return errors.NotValidf("lxd.timeout %s", c.LXD.Timeout)
	}
	if (c.LXD.ClientCert == "") != (c.LXD.ClientKey == "") {
		return errors.NotValidf("lxd.client_cert and lxd.client_key must be set together")
	}
	return nil
}

// Credentials reads the PEM files named in the LXD section. Unset paths
// give empty strings.
func (c LXDConfig) Credentials() (cert, key, serverCert string, err error) {
	read := func(path string) (string, error) {
		if path == "" {
			return "", nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Annotatef(err, "reading %s", path)
		}
		return string(data), nil
	}
	if cert, err = read(c.ClientCert); err != nil {
		return
	}
	if key, err = read(c.ClientKey); err != nil {
		return
	}
	serverCert, err = read(c.ServerCert)
	return
}
