package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerHealthIsClamped(t *testing.T) {
	p := NewPlayer(5)

	p.Hurt(7)
	assert.Equal(t, 0, p.Health)
	assert.False(t, p.Alive())

	p.Heal(2)
	assert.Equal(t, 2, p.Health)
	assert.True(t, p.Alive())

	p.Heal(10)
	assert.Equal(t, 5, p.Health)
}
