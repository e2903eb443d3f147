// SPDX-License-Identifier: MIT

// Command quadview splits a window into four viewports and prints where a
// triangle lands in each of them after the model-view-projection transform.
//
//	quadview -config scene.json -width 1280 -height 720 -v
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvmath/vec"
	"github.com/katalvlaran/lvmath/viewport"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "JSON config file")
		width   = flag.Int("width", 0, "window width (overrides config)")
		height  = flag.Int("height", 0, "window height (overrides config)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var wOverride, hOverride *int
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			wOverride = width
		case "height":
			hOverride = height
		}
	})
	cfg, err := resolveConfig(*cfgPath, wOverride, hOverride)
	if err != nil {
		log.WithError(err).Fatal("config")
	}

	if err := run(context.Background(), cfg, log, os.Stdout); err != nil {
		log.WithError(err).Fatal("quadview")
	}
}

// run builds the pipeline, projects the triangle into every quadrant and
// writes one line per quadrant to w, bottom-left first.
func run(ctx context.Context, cfg config, log logrus.FieldLogger, w io.Writer) error {
	p, err := viewport.NewPipeline(cfg.options()...)
	if err != nil {
		return err
	}
	if err := p.Reshape(cfg.Width, cfg.Height); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"window": p.Window(),
		"fovY":   cfg.FovY,
		"eye":    cfg.Eye.vec3(),
	}).Debug("reshaped")

	tri := cfg.triangle()
	quads := viewport.Quadrants(cfg.Width, cfg.Height)
	var out [len(quads)][]vec.Vec3d

	errg, gctx := errgroup.WithContext(ctx)
	for i, vp := range quads {
		i, vp := i, vp // per-iteration copies; go directive is 1.21
		errg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pts, err := p.ProjectAll(tri, vp)
			if err != nil {
				return fmt.Errorf("quadrant %d: %w", i, err)
			}
			out[i] = pts
			log.WithField("viewport", vp).Debug("projected")
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return err
	}

	for i, vp := range quads {
		if _, err := fmt.Fprintf(w, "quadrant %d %v: %v %v %v\n", i, vp, out[i][0], out[i][1], out[i][2]); err != nil {
			return err
		}
	}
	return nil
}
