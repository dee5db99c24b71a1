package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// Render configures the forward renderer. Feature keys enable by
// presence: an absent sky or postprocess key means the feature is not
// constructed at all.
type Render struct {
	// AreaLight is the global ambient light color. Defaults to white.
	AreaLight *[3]float32 `json:"areaLight,omitempty"`
	// Sky is a path to the sky texture. Presence enables the sky pass.
	Sky string `json:"sky,omitempty"`
	// Postprocess is a path to a fragment shader. Presence enables the
	// offscreen target and fullscreen composite pass.
	Postprocess string `json:"postprocess,omitempty"`
}

// AreaLightColor returns the configured ambient color, or white.
func (r Render) AreaLightColor() mgl32.Vec3 {
	if r.AreaLight == nil {
		return mgl32.Vec3{1, 1, 1}
	}
	return mgl32.Vec3{r.AreaLight[0], r.AreaLight[1], r.AreaLight[2]}
}

// Window configures the viewer window.
type Window struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// App is the viewer's configuration file layout.
type App struct {
	Window Window `json:"window"`
	Render Render `json:"render"`
}

// Default returns the configuration used when no file is present: a
// 1280x720 window, white ambient, no sky, no post-processing.
func Default() App {
	return App{
		Window: Window{Width: 1280, Height: 720, Title: "scene-viewer"},
	}
}

// Load reads the configuration from a JSON file. A missing file is not an
// error and yields Default(); any other read or parse failure returns the
// defaults alongside the error.
func Load(path string) (App, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}
	app := Default()
	if err := json.Unmarshal(data, &app); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return app, nil
}
