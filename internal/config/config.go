package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything needed to compute and export an index run.
type Config struct {
	Prices struct {
		Path       string `yaml:"path"`
		DateLayout string `yaml:"date_layout"`
	} `yaml:"prices"`
	Index struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"index"`
	Export struct {
		Path           string `yaml:"path"`
		RebalancesPath string `yaml:"rebalances_path"`
	} `yaml:"export"`
	Store struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"store"`
}

const (
	DefaultPricesPath = "./data_sources/stock_prices.csv"
	DefaultExportPath = "./export.csv"
	DefaultStart      = "2020-01-01"
	DefaultEnd        = "2020-12-31"
	DefaultDriver     = "sqlite"
)

// Load reads config from a YAML file. A missing file is not an error:
// every field has a default.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			// unknown keys are rejected, the base level is not configurable
			dec := yaml.NewDecoder(bytes.NewReader(data))
			dec.KnownFields(true)
			if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Prices.Path == "" {
		c.Prices.Path = DefaultPricesPath
	}
	if c.Index.Start == "" {
		c.Index.Start = DefaultStart
	}
	if c.Index.End == "" {
		c.Index.End = DefaultEnd
	}
	if c.Export.Path == "" {
		c.Export.Path = DefaultExportPath
	}
	if c.Store.Driver == "" {
		c.Store.Driver = DefaultDriver
	}
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported store driver %q", c.Store.Driver)
	}
	return nil
}
