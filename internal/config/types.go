package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	FormatPlain = "plain"
	FormatTable = "table"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Catalog struct {
	Path   string `yaml:"path" json:"path"`
	Header string `yaml:"header" json:"header,omitempty"`
	Legend string `yaml:"legend" json:"legend,omitempty"`
}

type Output struct {
	Format string `yaml:"format" json:"format,omitempty"`
	Color  string `yaml:"color" json:"color,omitempty"`
}

type Log struct {
	File string `yaml:"file" json:"file,omitempty"`
}

type Config struct {
	Catalog Catalog `yaml:"catalog" json:"catalog"`
	Output  Output  `yaml:"output" json:"output"`
	Log     Log     `yaml:"log" json:"log"`
}

// UnmarshalYAML accepts either a bare path or a mapping.
func (c *Catalog) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*c = Catalog{Path: value.Value}
		return nil
	case yaml.MappingNode:
		var aux struct {
			Path   string `yaml:"path"`
			Header string `yaml:"header"`
			Legend string `yaml:"legend"`
		}
		if err := value.Decode(&aux); err != nil {
			return err
		}
		*c = Catalog{Path: aux.Path, Header: aux.Header, Legend: aux.Legend}
		return nil
	default:
		return fmt.Errorf("invalid catalog node kind: %d", value.Kind)
	}
}
