// Package dungeon loads crypt levels from Tiled maps and moves the party
// through them one cell at a time.
package dungeon

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/automoto/cryptcrawl/config"
	"github.com/lafriks/go-tiled"
	"github.com/solarlune/resolv"
)

//go:embed levels/*.tmx
var Levels embed.FS

// Resolv tags
const (
	TagSolid    = "solid"
	TagExplorer = "explorer"
)

// Layer and object group names used in level files
const (
	layerWalls       = "walls"
	groupStart       = "Start"
	groupEncounters  = "Encounters"
	groupMessages    = "Messages"
	propFacing       = "facing"
	propFoe          = "foe"
	propText         = "text"
	messagePageSplit = "|"
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Step returns the neighbouring cell in direction f.
func (c Cell) Step(f Facing) Cell {
	dx, dy := f.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Map is a loaded dungeon level.
type Map struct {
	Name     string
	Width    int
	Height   int
	TileSize int

	Start       Cell
	StartFacing Facing

	// Encounters are fixed fights, each fought once.
	Encounters map[Cell]config.FoeKind
	// Messages are dialog pages shown when stepping on a cell.
	Messages map[Cell][]string

	walls []bool
}

// LoadLevel loads an embedded level by name.
func LoadLevel(name string) (*Map, error) {
	return Load(Levels, "levels/"+name+".tmx")
}

// Load parses a TMX file from fsys.
func Load(fsys fs.FS, tmxPath string) (*Map, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	m := &Map{
		Name:       strings.TrimSuffix(tmxPath[strings.LastIndex(tmxPath, "/")+1:], ".tmx"),
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileSize:   levelMap.TileWidth,
		Encounters: map[Cell]config.FoeKind{},
		Messages:   map[Cell][]string{},
		walls:      make([]bool, levelMap.Width*levelMap.Height),
	}

	foundWalls := false
	for _, layer := range levelMap.Layers {
		if layer.Name != layerWalls {
			continue
		}
		foundWalls = true
		for i, tile := range layer.Tiles {
			if i < len(m.walls) && !tile.IsNil() {
				m.walls[i] = true
			}
		}
		break
	}
	if !foundWalls {
		return nil, fmt.Errorf("level %s: missing %q tile layer", tmxPath, layerWalls)
	}

	foundStart := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			cell := m.cellAt(o.X, o.Y, levelMap.TileWidth, levelMap.TileHeight)
			switch og.Name {
			case groupStart:
				facing, ok := ParseFacing(o.Properties.GetString(propFacing))
				if !ok {
					facing = North
				}
				m.Start = cell
				m.StartFacing = facing
				foundStart = true
			case groupEncounters:
				name := o.Properties.GetString(propFoe)
				kind, ok := config.ParseFoeKind(name)
				if !ok {
					return nil, fmt.Errorf("level %s: unknown foe %q at %v", tmxPath, name, cell)
				}
				m.Encounters[cell] = kind
			case groupMessages:
				text := o.Properties.GetString(propText)
				if text == "" {
					continue
				}
				m.Messages[cell] = strings.Split(text, messagePageSplit)
			}
		}
	}
	if !foundStart {
		return nil, fmt.Errorf("level %s: missing %q object", tmxPath, groupStart)
	}
	if m.Wall(m.Start) {
		return nil, fmt.Errorf("level %s: start %v is inside a wall", tmxPath, m.Start)
	}

	log.Printf("Loaded level %s: %dx%d, %d encounters, %d messages",
		m.Name, m.Width, m.Height, len(m.Encounters), len(m.Messages))

	return m, nil
}

func (m *Map) cellAt(x, y float64, tileW, tileH int) Cell {
	return Cell{X: int(x) / tileW, Y: int(y) / tileH}
}

func (m *Map) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.Width && c.Y < m.Height
}

// Wall reports whether c is solid. Cells outside the map are solid.
func (m *Map) Wall(c Cell) bool {
	if !m.InBounds(c) {
		return true
	}
	return m.walls[c.Y*m.Width+c.X]
}

// Space builds a collision space with one solid object per wall cell.
func (m *Map) Space() *resolv.Space {
	size := m.TileSize
	space := resolv.NewSpace(m.Width*size, m.Height*size, size, size)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.walls[y*m.Width+x] {
				continue
			}
			w := float64(size)
			obj := resolv.NewObject(float64(x*size), float64(y*size), w, w, TagSolid)
			obj.SetShape(resolv.NewRectangle(0, 0, w, w))
			space.Add(obj)
		}
	}
	return space
}
