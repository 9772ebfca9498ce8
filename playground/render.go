package main

import (
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/KoraAleksandr/3D-graphics/config"
	"github.com/KoraAleksandr/3D-graphics/scene"
	"github.com/KoraAleksandr/3D-graphics/shader"
)

const (
	positionAttrib = 0
	colorAttrib    = 1
)

// renderer owns every GL object the playground creates.
type renderer struct {
	camera scene.Camera

	vertexArray uint32
	bufVertex   uint32
	bufColor    uint32

	colorProgram  *shader.Program // per vertex colors, draws the pyramid
	simpleProgram *shader.Program // constant color, draws the triangle
}

// newRenderer compiles the programs and uploads the static buffers. The GL
// context must be current.
func newRenderer(cfg *config.Config) (*renderer, error) {
	r := &renderer{
		camera: scene.Camera{
			Radius: cfg.Camera.Radius,
			FovY:   cfg.Camera.FovY,
			Aspect: cfg.Aspect(),
			Near:   cfg.Camera.Near,
			Far:    cfg.Camera.Far,
		},
	}

	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	// only keep fragments closer to the camera than the ones already drawn
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	gl.GenVertexArrays(1, &r.vertexArray)
	gl.BindVertexArray(r.vertexArray)

	var err error
	r.colorProgram, err = shader.NewProgram(
		cfg.ShaderPath(cfg.Shaders.ColorVertex),
		cfg.ShaderPath(cfg.Shaders.ColorFragment))
	if err != nil {
		r.release()
		return nil, err
	}
	r.simpleProgram, err = shader.NewProgram(
		cfg.ShaderPath(cfg.Shaders.SimpleVertex),
		cfg.ShaderPath(cfg.Shaders.SimpleFragment))
	if err != nil {
		r.release()
		return nil, err
	}

	gl.GenBuffers(1, &r.bufVertex)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.bufVertex)
	gl.BufferData(gl.ARRAY_BUFFER, len(scene.PositionData), gl.Ptr(scene.PositionData), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.bufColor)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.bufColor)
	gl.BufferData(gl.ARRAY_BUFFER, len(scene.ColorData), gl.Ptr(scene.ColorData), gl.STATIC_DRAW)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	slog.Debug("scene uploaded",
		"vertices", scene.VertexCount,
		"positionBytes", len(scene.PositionData),
		"colorBytes", len(scene.ColorData))
	return r, nil
}

// paint draws one frame t seconds after startup.
func (r *renderer) paint(t float64) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	mvp := r.camera.MVP(t)

	r.colorProgram.Use()
	r.colorProgram.SetMVP(&mvp)

	gl.EnableVertexAttribArray(positionAttrib)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.bufVertex)
	gl.VertexAttribPointer(positionAttrib, scene.CoordsPerVertex, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(colorAttrib)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.bufColor)
	gl.VertexAttribPointer(colorAttrib, scene.ColorComponents, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.DrawArrays(gl.TRIANGLES, scene.PyramidFirst, scene.PyramidVertexCount)

	// the simple program ignores the color attribute
	r.simpleProgram.Use()
	r.simpleProgram.SetMVP(&mvp)
	gl.DrawArrays(gl.TRIANGLES, scene.TriangleFirst, scene.TriangleVertexCount)

	gl.DisableVertexAttribArray(positionAttrib)
	gl.DisableVertexAttribArray(colorAttrib)
}

// resize follows framebuffer size changes so the scene is not stretched.
func (r *renderer) resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	if width > 0 && height > 0 {
		r.camera.Aspect = float32(width) / float32(height)
	}
}

// reloadShaders rebuilds both programs from disk. A program whose sources no
// longer compile keeps running its previous version.
func (r *renderer) reloadShaders() {
	for _, p := range []*shader.Program{r.colorProgram, r.simpleProgram} {
		err := p.Reload()
		if err != nil {
			slog.Error("shader reload failed, keeping previous program", "vertex", p.VertexPath, "fragment", p.FragmentPath, "err", err)
			continue
		}
		slog.Info("shader reloaded", "vertex", p.VertexPath, "fragment", p.FragmentPath, "program", p.ID)
	}
}

func (r *renderer) release() {
	if r.bufVertex != 0 {
		gl.DeleteBuffers(1, &r.bufVertex)
	}
	if r.bufColor != 0 {
		gl.DeleteBuffers(1, &r.bufColor)
	}
	if r.vertexArray != 0 {
		gl.DeleteVertexArrays(1, &r.vertexArray)
	}
	if r.colorProgram != nil {
		r.colorProgram.Delete()
	}
	if r.simpleProgram != nil {
		r.simpleProgram.Delete()
	}
}
