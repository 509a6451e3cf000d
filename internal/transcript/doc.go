// Package transcript defines the recognizer side of the synchronization
// input: segments and words emitted by an automatic speech recognizer, with
// accurate timing but unreliable text.
//
// Recognizer output arrives as WhisperX-style JSON. Segments that lack
// word-level detail are synthesized into evenly split words before the
// timing engine sees them, so the engine can assume word timestamps exist.
package transcript
