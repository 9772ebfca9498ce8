// Package config holds the playground settings. The defaults reproduce the
// original tutorial exactly; a TOML file may override any of them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type Window struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
	Samples int    `toml:"samples"`
	VSync   bool   `toml:"vsync"`
}

type Camera struct {
	Radius float32 `toml:"radius"`
	FovY   float32 `toml:"fov"` // degrees
	Near   float32 `toml:"near"`
	Far    float32 `toml:"far"`
}

// Shaders names the two vertex/fragment pairs. Relative paths are resolved
// against Dir.
type Shaders struct {
	Dir            string `toml:"dir"`
	ColorVertex    string `toml:"color_vertex"`
	ColorFragment  string `toml:"color_fragment"`
	SimpleVertex   string `toml:"simple_vertex"`
	SimpleFragment string `toml:"simple_fragment"`
	Watch          bool   `toml:"watch"`
}

type Config struct {
	Window     Window     `toml:"window"`
	Camera     Camera     `toml:"camera"`
	Shaders    Shaders    `toml:"shaders"`
	ClearColor [4]float32 `toml:"clear_color"`
	LogLevel   string     `toml:"log_level"`
}

// Default returns the built in configuration.
func Default() *Config {
	return &Config{
		Window: Window{
			Width:   1024,
			Height:  768,
			Title:   "Tutorial 02 - Red triangle",
			Samples: 4,
			VSync:   true,
		},
		Camera: Camera{
			Radius: 5,
			FovY:   45,
			Near:   0.1,
			Far:    100,
		},
		Shaders: Shaders{
			Dir:            "shaders",
			ColorVertex:    "TransformVertexShader.vertexshader",
			ColorFragment:  "ColorFragmentShader.fragmentshader",
			SimpleVertex:   "SimpleTransform.vertexshader",
			SimpleFragment: "SimpleFragmentShaderB.fragmentshader",
		},
		ClearColor: [4]float32{0.9, 0.9, 0.5, 0.0},
		LogLevel:   "info",
	}
}

// Load reads the TOML file at path over the defaults. An empty path returns
// the defaults. Unknown keys are an error.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	err = dec.Decode(c)
	if err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%s: %s", path, strict.String())
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	err = c.Validate()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d is not positive", c.Window.Width, c.Window.Height)
	case c.Window.Samples < 0:
		return fmt.Errorf("window samples %d is negative", c.Window.Samples)
	case c.Camera.Radius <= 0:
		return fmt.Errorf("camera radius %v is not positive", c.Camera.Radius)
	case c.Camera.FovY <= 0 || c.Camera.FovY >= 180:
		return fmt.Errorf("camera fov %v is outside (0, 180)", c.Camera.FovY)
	case c.Camera.Near <= 0:
		return fmt.Errorf("camera near plane %v is not positive", c.Camera.Near)
	case c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("camera far plane %v is not beyond near plane %v", c.Camera.Far, c.Camera.Near)
	case c.Shaders.ColorVertex == "" || c.Shaders.ColorFragment == "" ||
		c.Shaders.SimpleVertex == "" || c.Shaders.SimpleFragment == "":
		return errors.New("all four shader paths are required")
	}
	_, err := c.Level()
	return err
}

// Aspect is the window width over its height.
func (c *Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}

// ShaderPath resolves name against the shader directory.
func (c *Config) ShaderPath(name string) string {
	if filepath.IsAbs(name) || c.Shaders.Dir == "" {
		return name
	}
	return filepath.Join(c.Shaders.Dir, name)
}

// ShaderPaths returns every shader file in load order.
func (c *Config) ShaderPaths() []string {
	return []string{
		c.ShaderPath(c.Shaders.ColorVertex),
		c.ShaderPath(c.Shaders.ColorFragment),
		c.ShaderPath(c.Shaders.SimpleVertex),
		c.ShaderPath(c.Shaders.SimpleFragment),
	}
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
