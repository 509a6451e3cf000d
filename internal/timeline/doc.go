// Package timeline defines the render-ready output of a synchronization
// run: ordered lines with word-level timing, serialized as JSON for the
// caption renderer. The package emits pure timing data; visual compositing
// belongs to the renderer.
package timeline
