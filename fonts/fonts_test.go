package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFont(t *testing.T) {
	require.NoError(t, LoadFontWithSize(Regular, goregular.TTF, 12))
	face := Regular.Get()
	assert.Greater(t, font.MeasureString(face, "crypt").Ceil(), 0)
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFont(Small, []byte("not a font")))
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
