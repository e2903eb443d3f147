// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvmath/vec"
	"github.com/katalvlaran/lvmath/viewport"
)

// point is a JSON [x, y, z] triple.
type point [3]float64

func (p point) vec3() vec.Vec3d { return vec.Vec3d{X: p[0], Y: p[1], Z: p[2]} }

// config is the quadview JSON document. Absent fields keep their defaults.
type config struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	FovY     float64 `json:"fovY"`
	Near     float64 `json:"near"`
	Far      float64 `json:"far"`
	Eye      point   `json:"eye"`
	Yaw      float64 `json:"yaw,omitempty"`
	Pitch    float64 `json:"pitch,omitempty"`
	Triangle []point `json:"triangle"`
}

var errConfig = errors.New("quadview: invalid config")

func defaultConfig() config {
	eye := viewport.DefaultEye
	return config{
		Width:  1024,
		Height: 800,
		FovY:   viewport.DefaultFovY,
		Near:   viewport.DefaultNear,
		Far:    viewport.DefaultFar,
		Eye:    point{eye.X, eye.Y, eye.Z},
		Triangle: []point{
			{-0.5, -0.5, 0},
			{0.5, -0.5, 0},
			{0.5, 0.5, 0},
		},
	}
}

// loadConfig decodes path over the defaults; an empty path yields the
// defaults. The result is not validated: flag overrides come first.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig loads path, applies the window size overrides that were
// given (nil means unset) and validates the result.
func resolveConfig(path string, width, height *int) (config, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return cfg, err
	}
	if width != nil {
		cfg.Width = *width
	}
	if height != nil {
		cfg.Height = *height
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window %dx%d: %w", c.Width, c.Height, errConfig)
	}
	if len(c.Triangle) != 3 {
		return fmt.Errorf("triangle has %d vertices, want 3: %w", len(c.Triangle), errConfig)
	}
	return nil
}

func (c config) options() []viewport.Option {
	return []viewport.Option{
		viewport.WithFovY(c.FovY),
		viewport.WithClip(c.Near, c.Far),
		viewport.WithEye(c.Eye.vec3()),
		viewport.WithOrientation(c.Yaw, c.Pitch),
	}
}

func (c config) triangle() []vec.Vec3d {
	out := make([]vec.Vec3d, len(c.Triangle))
	for i, p := range c.Triangle {
		out[i] = p.vec3()
	}
	return out
}
