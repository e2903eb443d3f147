// SPDX-License-Identifier: MIT

// Package viewport - reshape/draw pipeline.
//
// Purpose:
//   - Keep the projection in sync with the window size (Reshape).
//   - Derive the view matrix from a fixed camera (eye, yaw, pitch).
//   - Project model-space points into any viewport of the window.

package viewport

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/mat4"
	"github.com/katalvlaran/lvmath/vec"
)

// Defaults mirror a classic gluPerspective(60, w/h, 1, 20) +
// gluLookAt(0,0,5, 0,0,0, 0,1,0) setup.
const (
	DefaultFovY = 60.0
	DefaultNear = 1.0
	DefaultFar  = 20.0
)

// DefaultEye is the camera position looking at the origin down -z.
var DefaultEye = vec.Vec3d{Z: 5}

// Config holds the camera and clip parameters of a Pipeline.
type Config struct {
	FovY      float64   // vertical field of view, degrees
	Near, Far float64   // clip plane distances
	Eye       vec.Vec3d // camera position
	Yaw       float64   // degrees about +y
	Pitch     float64   // degrees about the camera's +x
}

// Option mutates a Config.
type Option func(*Config)

// WithFovY sets the vertical field of view in degrees.
func WithFovY(deg float64) Option { return func(c *Config) { c.FovY = deg } }

// WithClip sets the near and far clip distances.
func WithClip(near, far float64) Option {
	return func(c *Config) { c.Near, c.Far = near, far }
}

// WithEye sets the camera position.
func WithEye(eye vec.Vec3d) Option { return func(c *Config) { c.Eye = eye } }

// WithOrientation sets camera yaw and pitch in degrees.
func WithOrientation(yaw, pitch float64) Option {
	return func(c *Config) { c.Yaw, c.Pitch = yaw, pitch }
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{FovY: DefaultFovY, Near: DefaultNear, Far: DefaultFar, Eye: DefaultEye}
}

// Validate checks that the configuration can produce a projection.
func (c Config) Validate() error {
	switch {
	case !(c.FovY > 0 && c.FovY < 180):
		return fmt.Errorf("fovY %g not in (0,180): %w", c.FovY, ErrBadConfig)
	case !(c.Near > 0) || math.IsInf(c.Far, 0) || !(c.Far > c.Near):
		return fmt.Errorf("clip [%g, %g] needs 0 < near < far: %w", c.Near, c.Far, ErrBadConfig)
	case !c.Eye.IsFinite():
		return fmt.Errorf("eye %v: %w", c.Eye, ErrBadConfig)
	case math.IsNaN(c.Yaw) || math.IsInf(c.Yaw, 0) || math.IsNaN(c.Pitch) || math.IsInf(c.Pitch, 0):
		return fmt.Errorf("orientation yaw %g pitch %g: %w", c.Yaw, c.Pitch, ErrBadConfig)
	}
	return nil
}

// Pipeline holds the projection and view transforms of a window.
type Pipeline struct {
	cfg    Config
	window Viewport
	proj   mat4.Mat4d
	view   mat4.Mat4d
	mvp    mat4.Mat4d
	ready  bool // set by the first successful Reshape
}

// NewPipeline validates the configuration and builds the view matrix. The
// projection is built by the first Reshape.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	cfg := DefaultConfig()
	for _, fn := range opts {
		if fn != nil {
			fn(&cfg)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, viewportErrorf(opNew, err)
	}

	return &Pipeline{cfg: cfg, view: viewMatrix(cfg)}, nil
}

// viewMatrix is the inverse of the camera's world placement:
// RotateX(-pitch)·RotateY(-yaw)·Translate(-eye).
func viewMatrix(c Config) mat4.Mat4d {
	return mat4.Compose(
		mat4.RotateX(-c.Pitch),
		mat4.RotateY(-c.Yaw),
		mat4.Translate(c.Eye.Scale(-1)),
	)
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() Config { return p.cfg }

// Window returns the viewport set by the last Reshape.
func (p *Pipeline) Window() Viewport { return p.window }

// Reshape rebuilds the projection for a w×h window. On error the previous
// projection is kept.
//
// Errors:
//   - ErrEmptyViewport for a non-positive size.
//   - mat4.ErrDegenerateProjection if the projection cannot be built.
func (p *Pipeline) Reshape(w, h int) error {
	win := Full(w, h)
	aspect, err := win.Aspect()
	if err != nil {
		return viewportErrorf(opReshape, err)
	}
	proj, err := mat4.Perspective(p.cfg.FovY, aspect, p.cfg.Near, p.cfg.Far)
	if err != nil {
		return viewportErrorf(opReshape, err)
	}
	p.window, p.proj, p.mvp, p.ready = win, proj, proj.Mul(p.view), true

	return nil
}

// Projection returns the current projection matrix (zero before Reshape).
func (p *Pipeline) Projection() mat4.Mat4d { return p.proj }

// ModelView returns the view matrix (the model transform is the identity).
func (p *Pipeline) ModelView() mat4.Mat4d { return p.view }

// MVP returns Projection·ModelView.
func (p *Pipeline) MVP() mat4.Mat4d { return p.mvp }

// Uniform returns the MVP narrowed to float32 in column-major upload order,
// ready for glUniformMatrix4fv(loc, 1, GL_FALSE, &u[0]).
func (p *Pipeline) Uniform() [mat4.Size]float32 {
	return mat4.Convert[float32](p.mvp).ColumnMajor()
}

// Project maps a model-space point into window coordinates of vp.
//
// Errors:
//   - ErrNotReshaped before the first Reshape.
//   - ErrEmptyViewport when vp covers no pixel.
//   - mat4.ErrZeroW for a point on the camera plane.
func (p *Pipeline) Project(pt vec.Vec3d, vp Viewport) (vec.Vec3d, error) {
	if !p.ready {
		return vec.Vec3d{}, viewportErrorf(opProject, ErrNotReshaped)
	}
	if vp.Empty() {
		return vec.Vec3d{}, viewportErrorf(opProject, ErrEmptyViewport)
	}
	ndc, err := p.mvp.MulVec3Checked(pt)
	if err != nil {
		return vec.Vec3d{}, viewportErrorf(opProject, err)
	}

	return vp.ToWindow(ndc), nil
}

// ProjectAll projects every point into vp, stopping at the first error.
func (p *Pipeline) ProjectAll(pts []vec.Vec3d, vp Viewport) ([]vec.Vec3d, error) {
	out := make([]vec.Vec3d, len(pts))
	for i, pt := range pts {
		w, err := p.Project(pt, vp)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = w
	}
	return out, nil
}

// Visible reports whether the point lies inside the view frustum.
func (p *Pipeline) Visible(pt vec.Vec3d) bool {
	if !p.ready {
		return false
	}
	h := p.mvp.MulVec4(pt.Homogeneous())
	if !(h.W > 0) {
		return false
	}
	return math.Abs(h.X) <= h.W && math.Abs(h.Y) <= h.W && math.Abs(h.Z) <= h.W
}
