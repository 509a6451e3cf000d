// Package config loads and validates the karasync TOML configuration.
//
// Configuration is file-based with repository defaults: a missing file
// yields the defaults, a present file overlays them. Paths support "~"
// expansion. The timing constants configured here are pure parameters
// injected into the synchronization engine; nothing reads configuration at
// alignment time.
package config
