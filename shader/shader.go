/*
Package shader compiles GLSL programs from vertex and fragment shader files.
A GL context must be current on the calling thread.

	program, err := shader.Load("SimpleTransform.vertexshader", "SimpleFragmentShader.fragmentshader")
	if err != nil {
		log.Printf("error creating GL program: %v", err)
	}
*/
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/KoraAleksandr/3D-graphics/shadersrc"
)

// Load reads, compiles and links the vertex and fragment shaders at the given
// paths and returns the program name. Nothing is leaked on failure.
func Load(vertexPath, fragmentPath string) (uint32, error) {
	vs, err := compileFile(vertexPath, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileFile(fragmentPath, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link %s and %s: %s", vertexPath, fragmentPath, shadersrc.InfoLog(log))
	}

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	return program, nil
}

func compileFile(path string, typ uint32) (uint32, error) {
	src, err := shadersrc.ReadSource(path)
	if err != nil {
		return 0, err
	}

	s := gl.CreateShader(typ)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(s, 1, csrc, nil)
	free()
	gl.CompileShader(s)

	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(s, logLength, nil, &log[0])
		gl.DeleteShader(s)
		return 0, fmt.Errorf("failed to compile %s: %s", path, shadersrc.InfoLog(log))
	}
	return s, nil
}
