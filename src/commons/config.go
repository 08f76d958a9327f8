package commons

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type Config struct {
	Listen              string   `toml:"listen"`
	Release             bool     `toml:"release"`
	BackendURL          string   `toml:"backendURL"`
	RequestTimeout      Duration `toml:"requestTimeout"`
	RedisAddress        string   `toml:"redisAddress"`
	RedisMaxConnections int      `toml:"redisMaxConnections"`
	SessionTTL          Duration `toml:"sessionTTL"`
	SentryDSN           string   `toml:"sentryDSN"`
	LogLevel            string   `toml:"logLevel"`
}

// Duration lets TOML files use strings like "30s" or "1h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func DefaultConfig() Config {
	return Config{
		Listen:              ":8081",
		BackendURL:          "http://127.0.0.1:5000",
		RedisAddress:        "",
		RedisMaxConnections: 50,
		SessionTTL:          Duration{time.Hour},
		LogLevel:            "debug",
	}
}

// LoadConfig decodes the TOML file at path on top of cfg. Keys missing from
// the file keep their current value.
func LoadConfig(path string, cfg *Config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return errors.Wrapf(err, "load config %s", path)
	}
	return nil
}
