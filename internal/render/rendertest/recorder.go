// internal/render/rendertest/recorder.go
package rendertest

import (
	"space-shooter/internal/render"
	"space-shooter/internal/utils"
)

// Quad is one recorded DrawQuad call.
type Quad struct {
	Pos, Size utils.Vec2
	Color     utils.Vec4
	Rotation  float64
	Texture   render.TextureID
}

// Circle is one recorded DrawCircle call.
type Circle struct {
	Pos    utils.Vec2
	Radius float64
	Color  utils.Vec4
}

// Recorder captures draw calls and hands out sequential texture ids.
type Recorder struct {
	Quads    []Quad
	Circles  []Circle
	Textures map[render.TextureID]string
}

func NewRecorder() *Recorder {
	return &Recorder{Textures: make(map[render.TextureID]string)}
}

func (r *Recorder) CreateTexture(label string, width, height int, pixels []byte) render.TextureID {
	id := render.TextureID(len(r.Textures) + 1)
	r.Textures[id] = label
	return id
}

func (r *Recorder) DrawQuad(pos, size utils.Vec2, color utils.Vec4, rotation float64, tex render.TextureID) {
	r.Quads = append(r.Quads, Quad{Pos: pos, Size: size, Color: color, Rotation: rotation, Texture: tex})
}

func (r *Recorder) DrawCircle(pos utils.Vec2, radius float64, color utils.Vec4) {
	r.Circles = append(r.Circles, Circle{Pos: pos, Radius: radius, Color: color})
}

// WithTexture returns the quads drawn with tex.
func (r *Recorder) WithTexture(tex render.TextureID) []Quad {
	var out []Quad
	for _, q := range r.Quads {
		if q.Texture == tex {
			out = append(out, q)
		}
	}
	return out
}

// Reset drops recorded draw calls but keeps textures.
func (r *Recorder) Reset() {
	r.Quads = r.Quads[:0]
	r.Circles = r.Circles[:0]
}
