package services

import "context"

type contextKey string

const (
	runIDKey contextKey = "run_id"
	stageKey contextKey = "stage"
	songKey  contextKey = "song"
)

// WithRunID annotates context with the synchronization run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithStage annotates context with the pipeline stage name.
func WithStage(ctx context.Context, stage string) context.Context {
	if stage == "" {
		return ctx
	}
	return context.WithValue(ctx, stageKey, stage)
}

// StageFromContext returns the stage name if present.
func StageFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(stageKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithSong annotates context with a human-readable song identity
// ("title - artist").
func WithSong(ctx context.Context, song string) context.Context {
	if song == "" {
		return ctx
	}
	return context.WithValue(ctx, songKey, song)
}

// SongFromContext returns the song identity if present.
func SongFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(songKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
