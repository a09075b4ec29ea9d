package peepsgo

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is read from yaml and overridable through PEEPSGO_-prefixed
// environment variables (PEEPSGO_LISTEN, PEEPSGO_DATABASE_DRIVER, ...).
type Config struct {
	Listen        string `yaml:"listen"`
	SnowflakeNode int64  `yaml:"snowflake_node" split_words:"true"`
	Database      struct {
		Driver  string `yaml:"driver"`
		ConnStr string `yaml:"conn_str" split_words:"true"`
		Name    string `yaml:"name"`
	} `yaml:"database"`
}

// LoadConfig reads the yaml file at path, then applies PEEPSGO_-prefixed
// environment overrides. A missing file is not an error so the service can
// run on env vars alone.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Listen:        ":3000",
		SnowflakeNode: 1,
	}
	cfg.Database.Driver = "mongo"
	cfg.Database.Name = "peeps"

	fl, err := os.Open(path)
	if err == nil {
		defer fl.Close()
		if err = yaml.NewDecoder(fl).Decode(cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := envconfig.Process("peepsgo", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
