/*
Package shadersrc reads GLSL sources from disk and watches them for changes.
It has no dependency on a GL context so it can be used (and tested) before
one exists.

	src, err := shadersrc.ReadSource("shaders/ColorFragmentShader.fragmentshader")
	if err != nil {
		log.Printf("unable to read shader: %v", err)
	}
*/
package shadersrc

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// ReadSource reads the shader source at path and returns it NUL terminated,
// the form gl.Strs expects.
func ReadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read shader source: %w", err)
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		// anything past an embedded NUL would be silently dropped by GL
		return "", fmt.Errorf("shader source %s contains a NUL byte at offset %d", path, i)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return "", fmt.Errorf("shader source %s is empty", path)
	}
	return string(b) + "\x00", nil
}

// InfoLog converts a GL info log buffer into a printable string, dropping the
// trailing NUL and whitespace.
func InfoLog(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}
