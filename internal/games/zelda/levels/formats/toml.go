package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

func init() {
	register(ParseTOML, ".toml")
}

// TOMLLevel represents the TOML structure for a level file.
// Obstacles are written as [[obstacle]] tables.
type TOMLLevel struct {
	ID         string            `toml:"id"`
	Number     int               `toml:"number"`
	Name       string            `toml:"name"`
	Background string            `toml:"background"`
	Player     *Point            `toml:"player"`
	Obstacles  []Obstacle        `toml:"obstacle"`
	Metadata   map[string]string `toml:"metadata"`
}

// ParseTOML parses a TOML level file. Unknown keys are rejected.
func ParseTOML(data []byte) (Level, error) {
	var tl TOMLLevel
	md, err := toml.Decode(string(data), &tl)
	if err != nil {
		return Level{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Level{}, fmt.Errorf("toml decode: unknown key %q", undecoded[0].String())
	}
	return Level{
		ID:         tl.ID,
		Number:     tl.Number,
		Name:       tl.Name,
		Background: tl.Background,
		Player:     tl.Player,
		Obstacles:  tl.Obstacles,
		Metadata:   tl.Metadata,
	}, nil
}
