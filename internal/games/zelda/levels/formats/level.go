// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"sort"
	"strings"
)

// Level is a parsed level file, independent of its on-disk format.
// Colors and glyphs are kept as strings; the levels package resolves them.
type Level struct {
	ID         string
	Number     int
	Name       string
	Background string
	Player     *Point
	Obstacles  []Obstacle
	Metadata   map[string]string
}

// Point is a world position in pixels.
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// Obstacle is one obstacle entry, optionally repeated along a fixed step.
type Obstacle struct {
	Kind   string  `yaml:"kind" toml:"kind"`
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	W      float64 `yaml:"w" toml:"w"`
	H      float64 `yaml:"h" toml:"h"`
	Glyph  string  `yaml:"glyph,omitempty" toml:"glyph,omitempty"`
	Color  string  `yaml:"color,omitempty" toml:"color,omitempty"`
	Repeat *Repeat `yaml:"repeat,omitempty" toml:"repeat,omitempty"`
}

// Repeat places Count copies of an obstacle, each offset by (DX, DY) from the previous one.
type Repeat struct {
	Count int     `yaml:"count" toml:"count"`
	DX    float64 `yaml:"dx" toml:"dx"`
	DY    float64 `yaml:"dy" toml:"dy"`
}

// Parser decodes one file format.
type Parser func(data []byte) (Level, error)

var parsers = map[string]Parser{}

// register binds a parser to file extensions. Called from init() of each format.
func register(p Parser, exts ...string) {
	for _, ext := range exts {
		if _, exists := parsers[ext]; exists {
			panic(fmt.Sprintf("formats: extension %q already registered", ext))
		}
		parsers[ext] = p
	}
}

// Parse decodes data using the parser registered for ext (".yaml", ".toml", ...).
func Parse(data []byte, ext string) (Level, error) {
	p, ok := parsers[strings.ToLower(ext)]
	if !ok {
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	return p(data)
}

// FormatExtensions returns supported file extensions, sorted.
func FormatExtensions() []string {
	exts := make([]string, 0, len(parsers))
	for ext := range parsers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Supported reports whether ext has a registered parser.
func Supported(ext string) bool {
	_, ok := parsers[strings.ToLower(ext)]
	return ok
}
