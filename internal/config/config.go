// Package config loads service configuration from a yaml file, with working
// defaults for every field so the server runs with no file at all.
package config

import (
	"fmt"
	"os"

	"github.com/lineascope/core/internal/graph"
	"github.com/lineascope/core/internal/layout"
	"github.com/lineascope/core/internal/models"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Layout LayoutConfig `yaml:"layout"`
}

type ServerConfig struct {
	Port       int    `yaml:"port"`
	CORSOrigin string `yaml:"corsOrigin"`
}

type LayoutConfig struct {
	RankSep         float64    `yaml:"rankSep"`
	NodeSep         float64    `yaml:"nodeSep"`
	EntitySize      SizeConfig `yaml:"entitySize"`
	PlaceholderSize SizeConfig `yaml:"placeholderSize"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:       8080,
			CORSOrigin: "*",
		},
		Layout: LayoutConfig{
			RankSep:         layout.DefaultRankSep,
			NodeSep:         layout.DefaultNodeSep,
			EntitySize:      SizeConfig{Width: 220, Height: 120},
			PlaceholderSize: SizeConfig{Width: 180, Height: 60},
		},
	}
}

// Load reads a yaml config file and fills unset fields from Default. An empty
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	def := Default()
	if c.Server.Port <= 0 {
		c.Server.Port = def.Server.Port
	}
	if c.Server.CORSOrigin == "" {
		c.Server.CORSOrigin = def.Server.CORSOrigin
	}
	if c.Layout.RankSep <= 0 {
		c.Layout.RankSep = def.Layout.RankSep
	}
	if c.Layout.NodeSep <= 0 {
		c.Layout.NodeSep = def.Layout.NodeSep
	}
	if c.Layout.EntitySize.Width <= 0 || c.Layout.EntitySize.Height <= 0 {
		c.Layout.EntitySize = def.Layout.EntitySize
	}
	if c.Layout.PlaceholderSize.Width <= 0 || c.Layout.PlaceholderSize.Height <= 0 {
		c.Layout.PlaceholderSize = def.Layout.PlaceholderSize
	}
	return c
}

// GraphOptions maps the layout section onto build options.
func (c Config) GraphOptions() graph.Options {
	return graph.Options{
		Layout: layout.Config{
			RankSep: c.Layout.RankSep,
			NodeSep: c.Layout.NodeSep,
		},
		EntitySize: models.Size{
			Width:  c.Layout.EntitySize.Width,
			Height: c.Layout.EntitySize.Height,
		},
		PlaceholderSize: models.Size{
			Width:  c.Layout.PlaceholderSize.Width,
			Height: c.Layout.PlaceholderSize.Height,
		},
	}
}
