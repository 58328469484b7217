package webui

import (
	"github.com/mudler/LocalNotes/core/agent"
	"github.com/mudler/LocalNotes/core/notes"
)

type Config struct {
	Service *notes.Service
	Agent   *agent.Agent
}

type Option func(*Config)

func WithService(service *notes.Service) Option {
	return func(c *Config) {
		c.Service = service
	}
}

func WithAgent(a *agent.Agent) Option {
	return func(c *Config) {
		c.Agent = a
	}
}

func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

func NewConfig(opts ...Option) *Config {
	c := &Config{}
	c.Apply(opts...)
	return c
}
