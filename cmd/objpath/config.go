package main

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultFormat = "json"
	defaultColor  = "auto"
)

var (
	ErrUnknownFormat    = errors.New("unknown output format (want json, yaml or text)")
	ErrUnknownColorMode = errors.New("unknown color mode (want auto, always or never)")
)

// Settings controls how results are printed. Values come from the config
// file first and are overridden by flags.
//
// A config file looks like:
//
//	[output]
//	format = "yaml"
//	color = "never"
type Settings struct {
	Format string
	Color  string
}

func loadSettings(configPath, format, colorMode string) (Settings, error) {
	s := Settings{Format: defaultFormat, Color: defaultColor}

	if configPath != "" {
		k := koanf.New(".")
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return Settings{}, fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
		if v := k.String("output.format"); v != "" {
			s.Format = v
		}
		if v := k.String("output.color"); v != "" {
			s.Color = v
		}
	}

	if format != "" {
		s.Format = format
	}
	if colorMode != "" {
		s.Color = colorMode
	}

	switch s.Format {
	case "json", "yaml", "text":
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnknownFormat, s.Format)
	}
	switch s.Color {
	case "auto", "always", "never":
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnknownColorMode, s.Color)
	}
	return s, nil
}
