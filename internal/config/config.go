package config

import (
	"github.com/creasty/defaults"
)

type Server struct {
	HTTPPort   int    `default:"8000" validate:"min=1,max=65535"`
	ServerMode string `default:"dev" validate:"oneof=dev prod"`
}

type Store struct {
	// Path of the DuckDB database file. Empty or ":memory:" keeps documents in memory.
	Path string `default:"whereql.duckdb"`
}

type Query struct {
	NumWorkers int `default:"3" validate:"min=1"`
	// Collection queried by the CLI when none is given.
	Collection string `default:"documents"`
}

type Configuration struct {
	Server    Server
	Store     Store
	Query     Query
	LogLevel  string `default:"info" validate:"oneof=debug info warn error"`
	LogFormat string `default:"console" validate:"oneof=console json"`
}

type ConfigurationOption func(*Configuration)

func NewConfigurationWithOptions(opts ...ConfigurationOption) *Configuration {
	c := &Configuration{}
	for _, o := range opts {
		o(c)
	}
	return c
}

func NewConfigurationWithOptionsAndDefaults(opts ...ConfigurationOption) *Configuration {
	c := NewConfigurationWithOptions(opts...)
	if err := defaults.Set(c); err != nil {
		panic(err)
	}
	return c
}

func WithStorePath(path string) ConfigurationOption {
	return func(c *Configuration) {
		c.Store.Path = path
	}
}

func WithLogLevel(level string) ConfigurationOption {
	return func(c *Configuration) {
		c.LogLevel = level
	}
}
