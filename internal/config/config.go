// Package config holds the defaults for the orient command, optionally loaded
// from a TOML file.
package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type Config struct {
	Format   string `toml:"format"`
	Color    bool   `toml:"color"`
	LogLevel string `toml:"log_level"`

	Draw Draw `toml:"draw"`
}

// Options for the PNG drawings. No drawings are written when Dir is empty.
type Draw struct {
	Dir    string  `toml:"dir"`
	Scale  float64 `toml:"scale"`
	Imgcat bool    `toml:"imgcat"`
}

func Default() Config {
	return Config{
		Format:   "text",
		Color:    true,
		LogLevel: "info",
		Draw: Draw{
			Scale: 50,
		},
	}
}

// Load the file at path over the defaults. Keys missing from the file keep
// their default values. Unknown keys are an error, since they're almost always
// typos.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "loading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return cfg, errors.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "loading config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Draw.Scale <= 0 {
		return errors.Errorf("draw scale must be positive, got %v", c.Draw.Scale)
	}
	return nil
}
