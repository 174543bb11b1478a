package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	solidsGroup = "Solids"
	spawnGroup  = "Spawn"
	spawnName   = "player"
)

var ErrNoSpawn = errors.New("level: no player spawn")

//go:embed levels/*.tmx
var LevelsFS embed.FS

// Rect is an axis-aligned box with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H float64
	Platform   bool
}

// Level is the collision geometry of a map, in pixels.
type Level struct {
	Name          string
	Width, Height float64
	Solids        []Rect
	SpawnX        float64
	SpawnY        float64
}

// DiskDir is where Load looks for edited levels, relative to the working
// directory. It mirrors the embedded layout, so running from the module root
// picks up edits to level/levels/<name>.tmx.
const DiskDir = "level"

// Load reads a TMX level by base name, preferring the copy under DiskDir
// over the embedded one.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	if _, err := os.Stat(filepath.Join(DiskDir, filepath.FromSlash(clean))); err == nil {
		return LoadFS(os.DirFS(DiskDir), clean)
	}
	return LoadFS(LevelsFS, clean)
}

// LoadFS parses a TMX file from fsys. Solid rectangles come from the
// "Solids" object group (objects with kind=platform become platforms) and
// the spawn point from the "player" object of the "Spawn" group.
func LoadFS(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("level: load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	spawned := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case solidsGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				lvl.Solids = append(lvl.Solids, Rect{
					X:        o.X,
					Y:        o.Y,
					W:        o.Width,
					H:        o.Height,
					Platform: o.Properties.GetString("kind") == "platform",
				})
			}
		case spawnGroup:
			for _, o := range og.Objects {
				if o.Name != spawnName {
					continue
				}
				lvl.SpawnX, lvl.SpawnY = o.X, o.Y
				spawned = true
			}
		}
	}
	if !spawned {
		return nil, fmt.Errorf("level: %s: %w", tmxPath, ErrNoSpawn)
	}
	return lvl, nil
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if !strings.HasSuffix(s, ".tmx") {
		s += ".tmx"
	}
	return "levels/" + s
}
