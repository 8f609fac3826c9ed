// Package levels loads level layouts (obstacles, background, player start).
// This package depends on core but the game's simulation does not depend on file formats.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"unicode/utf8"

	"github.com/vovakirdan/tui-zelda/internal/core"
	"github.com/vovakirdan/tui-zelda/internal/games/zelda/levels/formats"
)

//go:embed builtin
var builtinFS embed.FS

// ErrNotFound is returned when no level matches a lookup.
var ErrNotFound = errors.New("level not found")

// ObstacleKind classifies an obstacle.
type ObstacleKind string

const (
	Decor ObstacleKind = "decor" // blocks movement
	Water ObstacleKind = "water" // slows movement
	Fire  ObstacleKind = "fire"  // damages on contact
)

var defaultGlyphs = map[ObstacleKind]rune{
	Decor: '♣',
	Water: '≈',
	Fire:  '▲',
}

var defaultColors = map[ObstacleKind]core.Color{
	Decor: core.ColorGreen,
	Water: core.ColorBlue,
	Fire:  core.ColorOrange,
}

// Obstacle is a placed obstacle in world pixels.
type Obstacle struct {
	Kind   ObstacleKind
	Bounds core.RectF
	Glyph  rune
	Color  core.Color
}

// Level represents a complete level definition.
type Level struct {
	ID          string
	Number      int // level-select key, 1..3 for the built-in set
	Name        string
	Background  core.Color
	PlayerStart *core.Vec2 // nil centers the player
	Obstacles   []Obstacle
	Metadata    map[string]string
	FilePath    string
}

// CheckBounds reports the first obstacle not fully inside a w by h scene.
func (l Level) CheckBounds(w, h float64) error {
	for i, o := range l.Obstacles {
		b := o.Bounds
		if b.X < 0 || b.Y < 0 || b.Right() > w || b.Bottom() > h {
			return fmt.Errorf("obstacle %d at (%g,%g) size %gx%g outside the %gx%g scene", i, b.X, b.Y, b.W, b.H, w, h)
		}
	}
	return nil
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader over fsys rooted at root.
func NewLoader(fsys fs.FS, root string) *Loader {
	return &Loader{fsys: fsys, root: root}
}

// NewDirLoader creates a loader reading level files below a directory on disk.
func NewDirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir), ".")
}

// Builtin returns a loader over the embedded level set.
func Builtin() *Loader {
	return NewLoader(builtinFS, "builtin")
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by number, then ID, for deterministic ordering.
// Files that fail to parse are skipped.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, l.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !formats.Supported(path.Ext(p)) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		if levels[i].Number != levels[j].Number {
			return levels[i].Number < levels[j].Number
		}
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	parsed, err := formats.Parse(data, path.Ext(p))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	level, err := build(parsed)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", p, err)
	}
	level.FilePath = p
	return level, nil
}

// ByNumber returns the level bound to a level-select key.
func (l *Loader) ByNumber(n int) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.Number == n {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: number %d", ErrNotFound, n)
}

// ByID loads a specific level by ID.
func (l *Loader) ByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// build validates a parsed file and expands repeated obstacles.
func build(parsed formats.Level) (Level, error) {
	if parsed.ID == "" {
		return Level{}, errors.New("missing id")
	}

	level := Level{
		ID:         parsed.ID,
		Number:     parsed.Number,
		Name:       parsed.Name,
		Background: core.ColorDefault,
		Metadata:   parsed.Metadata,
	}
	if level.Name == "" {
		level.Name = parsed.ID
	}
	if parsed.Background != "" {
		c, ok := core.ParseColor(parsed.Background)
		if !ok {
			return Level{}, fmt.Errorf("unknown background color %q", parsed.Background)
		}
		level.Background = c
	}
	if parsed.Player != nil {
		start := core.V(parsed.Player.X, parsed.Player.Y)
		level.PlayerStart = &start
	}

	for i, o := range parsed.Obstacles {
		kind := ObstacleKind(o.Kind)
		glyph, known := defaultGlyphs[kind]
		if !known {
			return Level{}, fmt.Errorf("obstacle %d: unknown kind %q", i, o.Kind)
		}
		if o.W <= 0 || o.H <= 0 {
			return Level{}, fmt.Errorf("obstacle %d: size must be positive", i)
		}
		if o.Glyph != "" {
			glyph, _ = utf8.DecodeRuneInString(o.Glyph)
		}
		color := defaultColors[kind]
		if o.Color != "" {
			c, ok := core.ParseColor(o.Color)
			if !ok {
				return Level{}, fmt.Errorf("obstacle %d: unknown color %q", i, o.Color)
			}
			color = c
		}

		count, dx, dy := 1, 0.0, 0.0
		if o.Repeat != nil && o.Repeat.Count > 1 {
			count, dx, dy = o.Repeat.Count, o.Repeat.DX, o.Repeat.DY
		}
		for k := 0; k < count; k++ {
			level.Obstacles = append(level.Obstacles, Obstacle{
				Kind:   kind,
				Bounds: core.RectF{X: o.X + float64(k)*dx, Y: o.Y + float64(k)*dy, W: o.W, H: o.H},
				Glyph:  glyph,
				Color:  color,
			})
		}
	}
	return level, nil
}
