// Package lyrics defines the reference side of the synchronization input: a
// lyric line whose text is authoritative but whose timestamp may carry bulk
// drift relative to the actual audio.
//
// The package also parses the line-timed LRC format that lyric providers
// commonly emit. The timing engine never sees LRC markup, only the parsed
// Line values.
package lyrics
