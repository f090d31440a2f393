package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Settings holds every tunable of the demo. There are no flags and no config
// file; entry points start from Default and override fields in code.
type Settings struct {
	Width  int
	Height int
	Title  string

	// OpenGL context version (core profile)
	GLMajor int
	GLMinor int

	// FPS is the frame limiter target. 0 disables limiting.
	FPS        int
	ClearColor mgl32.Vec3

	// Camera
	FOV         float32 // degrees
	Near        float32
	Far         float32
	Speed       float32 // world units per millisecond of frame time
	CameraStart mgl32.Vec3

	// RotationRate is the cube spin in radians per second of wall-clock time.
	RotationRate float32

	ShaderDir   string
	TexturePath string

	LogLevel string
}

// Default returns the settings the demo ships with.
func Default() Settings {
	return Settings{
		Width:        1600,
		Height:       900,
		Title:        "glcube",
		GLMajor:      3,
		GLMinor:      3,
		FPS:          60,
		ClearColor:   mgl32.Vec3{0.08, 0.16, 0.18},
		FOV:          50,
		Near:         0.1,
		Far:          100,
		Speed:        0.01,
		CameraStart:  mgl32.Vec3{2, 3, 3},
		RotationRate: 0.5,
		ShaderDir:    "assets/shaders",
		TexturePath:  "assets/textures/crate.png",
		LogLevel:     "info",
	}
}

// AspectRatio returns width/height of the window.
func (s Settings) AspectRatio() float32 {
	return float32(s.Width) / float32(s.Height)
}

// Validate rejects settings the renderer cannot start with.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Width, s.Height)
	}
	if s.FPS < 0 {
		return fmt.Errorf("invalid fps limit %d", s.FPS)
	}
	if s.FOV <= 0 || s.FOV >= 180 {
		return fmt.Errorf("field of view %.1f out of range (0, 180)", s.FOV)
	}
	if s.Near <= 0 || s.Near >= s.Far {
		return fmt.Errorf("invalid clip planes near=%v far=%v", s.Near, s.Far)
	}
	return nil
}
