package dungeon

import (
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/automoto/cryptcrawl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tmx(width, height int, csv, groups string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="%d" height="%d" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="test" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="test.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="walls" width="%d" height="%d">
  <data encoding="csv">
%s
</data>
 </layer>
%s
</map>`, width, height, width, height, csv, groups)
}

func object(id, cx, cy int, prop, value string) string {
	return fmt.Sprintf(`  <object id="%d" x="%d" y="%d" width="16" height="16">
   <properties>
    <property name="%s" value="%s"/>
   </properties>
  </object>
`, id, cx*16, cy*16, prop, value)
}

func group(name string, objects ...string) string {
	body := ""
	for _, o := range objects {
		body += o
	}
	return fmt.Sprintf(" <objectgroup name=%q>\n%s </objectgroup>\n", name, body)
}

const corridor = `1,1,1,1,1,
1,0,0,0,1,
1,1,1,1,1`

func loadTest(t *testing.T, data string) (*Map, error) {
	t.Helper()
	fsys := fstest.MapFS{"levels/test.tmx": &fstest.MapFile{Data: []byte(data)}}
	return Load(fsys, "levels/test.tmx")
}

func TestLoadEmbeddedCrypt(t *testing.T) {
	m, err := LoadLevel("crypt")
	require.NoError(t, err)

	assert.Equal(t, "crypt", m.Name)
	assert.Equal(t, 12, m.Width)
	assert.Equal(t, 10, m.Height)
	assert.Equal(t, 16, m.TileSize)
	assert.Equal(t, Cell{1, 1}, m.Start)
	assert.Equal(t, South, m.StartFacing)

	assert.Len(t, m.Encounters, 3)
	assert.Equal(t, config.FoeSkeleton, m.Encounters[Cell{5, 3}])
	assert.Equal(t, config.FoeGolem, m.Encounters[Cell{1, 7}])
	require.Len(t, m.Messages[Cell{3, 1}], 2)
	assert.Equal(t, "Something rattles further in.", m.Messages[Cell{3, 1}][1])

	assert.True(t, m.Wall(Cell{0, 0}))
	assert.False(t, m.Wall(Cell{1, 1}))
	assert.True(t, m.Wall(Cell{2, 2}))
	assert.True(t, m.Wall(Cell{-1, 3}))
	assert.True(t, m.Wall(Cell{12, 3}))
}

func TestLoadMissingLevel(t *testing.T) {
	_, err := LoadLevel("nowhere")
	assert.Error(t, err)
}

func TestLoadRequiresStart(t *testing.T) {
	_, err := loadTest(t, tmx(5, 3, corridor, ""))
	assert.ErrorContains(t, err, "Start")
}

func TestLoadRejectsUnknownFoe(t *testing.T) {
	data := tmx(5, 3, corridor,
		group("Start", object(1, 1, 1, "facing", "east"))+
			group("Encounters", object(2, 3, 1, "foe", "dragon")))
	_, err := loadTest(t, data)
	assert.ErrorContains(t, err, "dragon")
}

func TestLoadRejectsStartInWall(t *testing.T) {
	_, err := loadTest(t, tmx(5, 3, corridor, group("Start", object(1, 0, 0, "facing", "east"))))
	assert.ErrorContains(t, err, "inside a wall")
}

func TestLoadDefaultsFacing(t *testing.T) {
	m, err := loadTest(t, tmx(5, 3, corridor, group("Start", object(1, 2, 1, "facing", "up"))))
	require.NoError(t, err)
	assert.Equal(t, Cell{2, 1}, m.Start)
	assert.Equal(t, North, m.StartFacing)
}

func TestFacing(t *testing.T) {
	assert.Equal(t, West, North.Turn(-1))
	assert.Equal(t, North, West.Turn(1))
	assert.Equal(t, West, East.Turn(2))
	assert.Equal(t, South, North.Turn(2))
	assert.Equal(t, Cell{2, 0}, Cell{2, 1}.Step(North))
	assert.Equal(t, Cell{3, 1}, Cell{2, 1}.Step(East))

	f, ok := ParseFacing("west")
	assert.True(t, ok)
	assert.Equal(t, West, f)
	assert.Equal(t, "south", South.String())
}
