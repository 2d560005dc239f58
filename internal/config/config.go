// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Title      string `yaml:"title"`
	ShowFPS    bool   `yaml:"show_fps"`
}

// CameraConfig holds projection settings.
type CameraConfig struct {
	FOV  float32 `yaml:"fov"` // Vertical field of view in degrees
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// SceneConfig holds tessellation defaults for newly spawned primitives.
type SceneConfig struct {
	SphereRings        int        `yaml:"sphere_rings"`
	SphereSectors      int        `yaml:"sphere_sectors"`
	CylinderSectors    int        `yaml:"cylinder_sectors"`
	ConeSectors        int        `yaml:"cone_sectors"`
	TorusMajorSegments int        `yaml:"torus_major_segments"`
	TorusMinorSegments int        `yaml:"torus_minor_segments"`
	DuplicateOffset    [3]float32 `yaml:"duplicate_offset"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Title:      "Fork",
			ShowFPS:    false,
		},
		Camera: CameraConfig{
			FOV:  45,
			Near: 0.1,
			Far:  100,
		},
		Scene: SceneConfig{
			SphereRings:        32,
			SphereSectors:      32,
			CylinderSectors:    32,
			ConeSectors:        32,
			TorusMajorSegments: 32,
			TorusMinorSegments: 16,
			DuplicateOffset:    [3]float32{1.5, 0, 0},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
