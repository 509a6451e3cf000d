// Package timing reconciles two descriptions of the same performance into a
// render-ready timeline: a textually correct but possibly drifted set of
// reference lyric lines, and a textually unreliable but temporally accurate
// word-level transcription.
//
// The pipeline runs strictly forward:
//
//  1. Global offset estimation corrects bulk drift between the two timelines.
//  2. Per-line windowed alignment copies recognizer timestamps onto
//     reference words that match inside a time-plausible window.
//  3. Gap interpolation fills timestamps for words that found no match,
//     anchored to the nearest confirmed neighbors.
//  4. Overlap resolution enforces a minimum visible duration per line and
//     pushes later lines forward until no two lines overlap.
//
// The engine never fails: malformed or empty input degrades timing quality
// but always yields a complete, well-ordered timeline. Given identical
// inputs the output is bit-for-bit identical.
package timing
