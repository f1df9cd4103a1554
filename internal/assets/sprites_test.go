package assets

import (
	"space-shooter/internal/render"
	"space-shooter/internal/render/rendertest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegistersEverySprite(t *testing.T) {
	rec := rendertest.NewRecorder()
	tex := Load(rec)

	ids := []render.TextureID{tex.Player, tex.BasicEnemy, tex.TurretBase, tex.TurretCannon, tex.Warning, tex.Repair}
	seen := map[render.TextureID]bool{}
	for _, id := range ids {
		assert.NotEqual(t, render.NoTexture, id)
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Equal(t, "player", rec.Textures[tex.Player])
}

func TestRasterizeFillsShape(t *testing.T) {
	img, ok := Rasterize("player")
	require.True(t, ok)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Len(t, img.Pix, 64*64*4)

	// nose of the hull is opaque, corner is empty
	assert.Equal(t, uint8(255), img.NRGBAAt(32, 20).A)
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).A)
}

func TestRasterizeUnknown(t *testing.T) {
	_, ok := Rasterize("nope")
	assert.False(t, ok)
}
