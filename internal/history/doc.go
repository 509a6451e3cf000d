// Package history persists completed synchronization runs and the song
// exclusion set in a SQLite database.
//
// The exclusion set replaces the ad hoc "used songs" file some song pickers
// keep: consumers read it explicitly and pass it to their selection logic.
// The timing engine itself never touches this store.
package history
