package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ThemeFile is the full on-disk theme document. A theme names the colors
// behind the renderer's semantic slots and the marks behind its glyph names;
// both maps are sparse, with missing entries falling back to the theme it
// extends (or the built-in default).
type ThemeFile struct {
	Name    string               `yaml:"name" validate:"required,theme_name"`
	Extends string               `yaml:"extends,omitempty" validate:"omitempty,theme_name"`
	Colors  map[string]ColorPair `yaml:"colors,omitempty" validate:"omitempty,dive"`
	Glyphs  map[string]string    `yaml:"glyphs,omitempty"`
}

// ColorPair holds the light- and dark-background colors behind one slot.
type ColorPair struct {
	Light string `yaml:"light" validate:"required,hexcolor"`
	Dark  string `yaml:"dark" validate:"required,hexcolor"`
}

// UnmarshalYAML customises color decoding: a slot value may be the full
// {light, dark} mapping or a single scalar color used for both backgrounds.
func (c *ColorPair) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var color string
		if err := value.Decode(&color); err != nil {
			return err
		}
		c.Light = color
		c.Dark = color
		return nil
	case yaml.MappingNode:
		type plainPair ColorPair
		var pair plainPair
		if err := value.Decode(&pair); err != nil {
			return err
		}
		*c = ColorPair(pair)
		return nil
	default:
		return fmt.Errorf("line %d: color must be a string or a light/dark mapping", value.Line)
	}
}
