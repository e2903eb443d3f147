// Package viewport reproduces, without a GL context, the per-frame transform
// work of a split-screen OpenGL program: build the projection on every window
// reshape, place a fixed camera, split the window into four quadrant
// viewports, and map projected vertices to window pixels.
//
// What
//
//   - Viewport: a pixel rectangle (glViewport arguments), Full and Quadrants
//     splitters, NDC → window mapping.
//   - Pipeline: projection (rebuilt by Reshape), view (from Config) and the
//     combined MVP; Project maps model-space points into a viewport.
//   - Uniform: the MVP narrowed to float32 in GL upload order.
//
// Concurrency
//
//	Reshape mutates the Pipeline and must not race with readers. After a
//	Reshape, Project/MVP/Uniform only read and may be called from many
//	goroutines.
package viewport
