// Command playground opens a window and draws a translucent pyramid pierced
// by a single triangle while the camera orbits around them. Press Escape or
// close the window to exit.
//
//	$ go run ./playground
//	$ go run ./playground -config playground.toml -watch
//
// Shader files are looked up relative to the working directory unless the
// configuration says otherwise.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/KoraAleksandr/3D-graphics/config"
	"github.com/KoraAleksandr/3D-graphics/shadersrc"
)

func init() {
	// GLFW event handling and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration `file`")
	watch := flag.Bool("watch", false, "reload shaders when their source files change")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *watch {
		cfg.Shaders.Watch = true
	}
	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	err = run(cfg)
	if err != nil {
		slog.Error("playground failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	window, err := initGraphics(cfg)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	r, err := newRenderer(cfg)
	if err != nil {
		return err
	}
	defer r.release()

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width int, height int) {
		r.resize(width, height)
	})

	var changes <-chan struct{}
	if cfg.Shaders.Watch {
		watcher, err := shadersrc.NewWatcher(cfg.ShaderPaths()...)
		if err != nil {
			return err
		}
		defer watcher.Close()
		changes = watcher.Changes()
		slog.Info("watching shader sources", "dir", cfg.Shaders.Dir)
	}

	for window.GetKey(glfw.KeyEscape) != glfw.Press && !window.ShouldClose() {
		select {
		case <-changes:
			r.reloadShaders()
		default:
		}

		r.paint(glfw.GetTime())

		window.SwapBuffers()
		glfw.PollEvents()
	}
	slog.Debug("render loop finished")
	return nil
}
