package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShootIntent(t *testing.T) {
	intent := ShootIntent{X: 120, Y: 300, Fired: true}

	// Test that it implements Intent interface
	var i Intent = intent
	i.isIntent() // Should not panic

	assert.Equal(t, 120.0, intent.X)
	assert.Equal(t, 300.0, intent.Y)
	assert.True(t, intent.Fired)
}

func TestReloadIntent(t *testing.T) {
	intent := ReloadIntent{Reloaded: false}

	var i Intent = intent
	i.isIntent()

	assert.False(t, intent.Reloaded)
}
