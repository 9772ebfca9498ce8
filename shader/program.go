package shader

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// MVPUniform is the name of the transform uniform every program is expected
// to declare.
const MVPUniform = "MVP"

// Program is a linked shader program that remembers where it was loaded from
// so it can be rebuilt.
type Program struct {
	ID           uint32
	VertexPath   string
	FragmentPath string

	mvp int32
}

// NewProgram loads a program from vertexPath and fragmentPath.
func NewProgram(vertexPath, fragmentPath string) (*Program, error) {
	p := &Program{VertexPath: vertexPath, FragmentPath: fragmentPath}
	err := p.Reload()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Reload rebuilds the program from its source files. If the sources fail to
// compile or link the current program stays in place.
func (p *Program) Reload() error {
	id, err := Load(p.VertexPath, p.FragmentPath)
	if err != nil {
		return err
	}
	mvp := gl.GetUniformLocation(id, gl.Str(MVPUniform+"\x00"))
	if mvp < 0 {
		gl.DeleteProgram(id)
		return fmt.Errorf("program %s has no active %s uniform", p.VertexPath, MVPUniform)
	}
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
	}
	p.ID = id
	p.mvp = mvp
	return nil
}

// Use installs the program for rendering.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// SetMVP uploads m to the MVP uniform. The program must be in use.
func (p *Program) SetMVP(m *mgl32.Mat4) {
	gl.UniformMatrix4fv(p.mvp, 1, false, &m[0])
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}
