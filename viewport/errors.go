// SPDX-License-Identifier: MIT

package viewport

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyViewport indicates a viewport or window with a non-positive side.
	ErrEmptyViewport = errors.New("viewport: width and height must be > 0")

	// ErrNotReshaped is returned when projecting before the first Reshape.
	ErrNotReshaped = errors.New("viewport: pipeline has no projection yet (call Reshape)")

	// ErrBadConfig indicates an invalid camera or clip configuration.
	ErrBadConfig = errors.New("viewport: invalid configuration")
)

const (
	opAspect  = "Aspect"
	opReshape = "Reshape"
	opProject = "Project"
	opNew     = "NewPipeline"
)

func viewportErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
