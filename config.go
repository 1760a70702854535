package duckext

import (
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"

	"github.com/marcboeker/duckext/mapping"
)

// Config holds DuckDB configuration flags for Open. The caller must close it.
type Config struct {
	config mapping.Config
}

// Options are commonly used configuration flags. Zero fields are left to DuckDB's defaults.
type Options struct {
	AccessMode  string `mapstructure:"access_mode,omitempty"`
	Threads     int    `mapstructure:"threads,omitempty"`
	MaxMemory   string `mapstructure:"max_memory,omitempty"`
	TempDir     string `mapstructure:"temp_directory,omitempty"`
	DefaultNull string `mapstructure:"default_null_order,omitempty"`
}

// ConfigFlag describes a flag DuckDB accepts.
type ConfigFlag struct {
	Name        string
	Description string
}

// NewConfig returns a new configuration.
func NewConfig() (*Config, error) {
	var config mapping.Config
	if mapping.CreateConfig(&config) == mapping.StateError {
		mapping.DestroyConfig(&config)
		return nil, getError(errCreateConfig, nil)
	}

	c := &Config{config: config}
	if err := c.SetFlag("duckdb_api", "go"); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// SetFlag sets a single flag, e.g., SetFlag("threads", "4").
func (c *Config) SetFlag(name string, option string) error {
	if mapping.SetConfig(c.config, name, option) == mapping.StateError {
		return getError(errSetConfig, fmt.Errorf("%s=%s", name, option))
	}
	return nil
}

// SetFlags sets one flag per field of v. v is a map or a struct with mapstructure tags, e.g., Options.
// The flags are set in name order.
func (c *Config) SetFlags(v any) error {
	flags := map[string]any{}
	if err := mapstructure.Decode(v, &flags); err != nil {
		return getError(errSetConfig, err)
	}

	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := c.SetFlag(name, fmt.Sprint(flags[name])); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the configuration. Closing a configuration twice is a no-op.
func (c *Config) Close() {
	if c == nil || c.config.Ptr == nil {
		return
	}
	mapping.DestroyConfig(&c.config)
	c.config.Ptr = nil
}

// ConfigFlags returns every flag DuckDB accepts.
func ConfigFlags() ([]ConfigFlag, error) {
	count := mapping.ConfigCount()
	flags := make([]ConfigFlag, 0, count)
	for i := range count {
		var flag ConfigFlag
		if mapping.GetConfigFlag(i, &flag.Name, &flag.Description) == mapping.StateError {
			return nil, getError(errConfigFlag, fmt.Errorf("%s: %d", indexErrMsg, i))
		}
		flags = append(flags, flag)
	}
	return flags, nil
}
