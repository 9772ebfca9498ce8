package main

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/KoraAleksandr/3D-graphics/config"
)

// initGraphics creates the window with a 3.3 core context and loads the GL
// function pointers. On error GLFW has already been terminated.
func initGraphics(cfg *config.Config) (*glfw.Window, error) {
	err := glfw.Init()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Samples, cfg.Window.Samples)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to open GLFW window, a 3.3 core context is required: %w", err)
	}
	window.MakeContextCurrent()

	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	err = gl.Init()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	slog.Info("OpenGL initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	// capture the escape key even when it is released between polls
	window.SetInputMode(glfw.StickyKeysMode, glfw.True)
	return window, nil
}
