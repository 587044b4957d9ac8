package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Source int // node the shortest-path search starts from
	Target int // node the printed path ends at

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns it ready for use.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Source < 1 || cfg.Source > nodeCount {
		return nil, errors.New("source must name one of the demo graph's nodes (1-6)")
	}
	if cfg.Target < 1 || cfg.Target > nodeCount {
		return nil, errors.New("target must name one of the demo graph's nodes (1-6)")
	}
	return &cfg, nil
}
