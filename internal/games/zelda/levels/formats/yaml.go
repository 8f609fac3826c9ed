package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func init() {
	register(ParseYAML, ".yaml", ".yml")
}

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID         string            `yaml:"id"`
	Number     int               `yaml:"number"`
	Name       string            `yaml:"name"`
	Background string            `yaml:"background,omitempty"`
	Player     *Point            `yaml:"player,omitempty"`
	Obstacles  []Obstacle        `yaml:"obstacles"`
	Metadata   map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return Level{
		ID:         yl.ID,
		Number:     yl.Number,
		Name:       yl.Name,
		Background: yl.Background,
		Player:     yl.Player,
		Obstacles:  yl.Obstacles,
		Metadata:   yl.Metadata,
	}, nil
}
