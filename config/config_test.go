package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFoeKind(t *testing.T) {
	for _, kind := range []FoeKind{FoeSkeleton, FoeWraith, FoeGolem} {
		got, ok := ParseFoeKind(kind.String())
		assert.True(t, ok)
		assert.Equal(t, kind, got)
	}

	_, ok := ParseFoeKind("dragon")
	assert.False(t, ok)
	assert.Equal(t, "none", FoeNone.String())
}

func TestFoesGetFallsBack(t *testing.T) {
	assert.Equal(t, "Golem", Foes.Get(FoeGolem).Name)
	assert.Equal(t, "Skeleton", Foes.Get(FoeNone).Name)
}

func TestBandsNest(t *testing.T) {
	assert.GreaterOrEqual(t, Crosshair.CritMin, Crosshair.HitMin)
	assert.LessOrEqual(t, Crosshair.CritMax, Crosshair.HitMax)
}

func TestNextVolumeStep(t *testing.T) {
	assert.Equal(t, 0.25, NextVolumeStep(0))
	assert.Equal(t, 1.0, NextVolumeStep(0.75))
	assert.Equal(t, 0.0, NextVolumeStep(1.0))
	assert.Equal(t, 0.5, NextVolumeStep(0.3))
}

func TestActionNames(t *testing.T) {
	assert.Equal(t, "fight", ActionBattleFight.String())
	assert.Equal(t, "unknown", ActionCount.String())
}
