// Package textutil provides text normalization and similarity helpers shared
// by the timing engine and the history store.
//
// The primary use cases are:
//   - Normalizing lyric and transcript words into comparable tokens
//   - Tokenizing free text with a minimum-length noise filter
//   - Computing cosine similarity between term-frequency fingerprints
//
// Normalization folds Unicode diacritics, lowercases, and strips everything
// that is not a letter or digit, so "Café!" and "cafe" compare equal.
package textutil
