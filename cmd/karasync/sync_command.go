package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"karasync/internal/config"
	"karasync/internal/history"
	"karasync/internal/logging"
	"karasync/internal/lyrics"
	"karasync/internal/services"
	"karasync/internal/textutil"
	"karasync/internal/timeline"
	"karasync/internal/timing"
	"karasync/internal/transcript"
)

type syncSummary struct {
	RunID         string  `json:"run_id"`
	Title         string  `json:"title,omitempty"`
	Artist        string  `json:"artist,omitempty"`
	Output        string  `json:"output"`
	Lines         int     `json:"lines"`
	TotalWords    int     `json:"total_words"`
	MatchedWords  int     `json:"matched_words"`
	GlobalOffset  float64 `json:"global_offset"`
	OffsetApplied bool    `json:"offset_applied"`
}

func newSyncCommand(ctx *commandContext) *cobra.Command {
	var lyricsPath string
	var transcriptPath string
	var outputPath string
	var title string
	var artist string
	var jsonOutput bool
	var force bool
	var skipHistory bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Align reference lyrics with a recognizer transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			refs, err := lyrics.LoadLRC(lyricsPath)
			if err != nil {
				return services.Wrap(services.ErrValidation, "sync", "load lyrics", "", err)
			}
			segments, err := transcript.LoadWhisperJSON(transcriptPath)
			if err != nil {
				return services.Wrap(services.ErrValidation, "sync", "load transcript", "", err)
			}
			words := transcript.Flatten(segments)

			var store *history.Store
			if cfg.History.Enabled && !skipHistory {
				store, err = history.Open(cfg.Paths.HistoryDir)
				if err != nil {
					return services.Wrap(services.ErrConfiguration, "sync", "open history", "", err)
				}
				defer store.Close()
			}

			if store != nil && title != "" && !force {
				excluded, err := store.IsExcluded(cmd.Context(), title, artist)
				if err != nil {
					return fmt.Errorf("check exclusions: %w", err)
				}
				if excluded {
					return fmt.Errorf("%q is excluded from synchronization (use --force to override)", songLabel(title, artist))
				}
			}

			runID := uuid.NewString()
			runCtx := services.WithRunID(cmd.Context(), runID)
			runCtx = services.WithStage(runCtx, "sync")
			if title != "" {
				runCtx = services.WithSong(runCtx, songLabel(title, artist))
			}
			log := logging.WithContext(runCtx, logging.NewComponentLogger(logger, "sync"))

			log.Info("starting synchronization",
				logging.Int("reference_lines", len(refs)),
				logging.Int("recognizer_words", len(words)))

			if sim := lyricsTranscriptSimilarity(refs, words); sim >= 0 && sim < similarityWarnThreshold {
				log.Warn("reference lyrics and transcript share little vocabulary; timing quality will suffer",
					logging.Float64("similarity", sim))
			}

			result := timing.Synchronize(refs, words, cfg.TimingOptions(), log)

			target, err := resolveOutputPath(outputPath, lyricsPath, cfg)
			if err != nil {
				return err
			}
			if err := timeline.Write(target, timeline.FromResult(result, title, artist)); err != nil {
				return err
			}

			if store != nil {
				run := history.Run{
					ID:             runID,
					Title:          title,
					Artist:         artist,
					SongKey:        history.SongKey(title, artist),
					LyricsPath:     lyricsPath,
					TranscriptPath: transcriptPath,
					OutputPath:     target,
					LineCount:      len(result.Lines),
					WordCount:      result.TotalWords,
					MatchedWords:   result.MatchedWords,
					GlobalOffset:   result.GlobalOffset,
					OffsetApplied:  result.OffsetApplied,
					CreatedAt:      time.Now().UTC(),
				}
				if _, err := store.RecordRun(runCtx, run); err != nil {
					return fmt.Errorf("record run: %w", err)
				}
			}

			log.Info("synchronization complete",
				logging.String("output", target),
				logging.Int("matched_words", result.MatchedWords),
				logging.Int("total_words", result.TotalWords))

			summary := syncSummary{
				RunID:         runID,
				Title:         title,
				Artist:        artist,
				Output:        target,
				Lines:         len(result.Lines),
				TotalWords:    result.TotalWords,
				MatchedWords:  result.MatchedWords,
				GlobalOffset:  result.GlobalOffset,
				OffsetApplied: result.OffsetApplied,
			}
			if jsonOutput {
				return writeJSON(cmd, summary)
			}
			printSyncSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&lyricsPath, "lyrics", "", "Reference lyrics file (LRC)")
	cmd.Flags().StringVar(&transcriptPath, "transcript", "", "Recognizer transcript file (Whisper JSON)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Timeline output path (defaults into output_dir)")
	cmd.Flags().StringVar(&title, "title", "", "Song title for history and timeline metadata")
	cmd.Flags().StringVar(&artist, "artist", "", "Song artist for history and timeline metadata")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run summary as JSON")
	cmd.Flags().BoolVar(&force, "force", false, "Synchronize even if the song is excluded")
	cmd.Flags().BoolVar(&skipHistory, "no-history", false, "Skip recording this run in history")
	_ = cmd.MarkFlagRequired("lyrics")
	_ = cmd.MarkFlagRequired("transcript")

	return cmd
}

// similarityWarnThreshold is the cosine similarity below which the lyrics
// and transcript are probably not the same song.
const similarityWarnThreshold = 0.3

// lyricsTranscriptSimilarity scores shared vocabulary between the reference
// text and the recognizer transcript. Returns -1 when either side yields no
// usable tokens.
func lyricsTranscriptSimilarity(refs []lyrics.Line, words []transcript.Word) float64 {
	var refText, recText strings.Builder
	for _, line := range refs {
		refText.WriteString(line.Text)
		refText.WriteByte(' ')
	}
	for _, word := range words {
		recText.WriteString(word.Text)
		recText.WriteByte(' ')
	}
	ref := textutil.NewFingerprint(refText.String())
	rec := textutil.NewFingerprint(recText.String())
	if ref == nil || rec == nil {
		return -1
	}
	return textutil.CosineSimilarity(ref, rec)
}

// resolveOutputPath picks the timeline destination. An explicit path wins;
// otherwise the lyrics file stem lands in the configured output directory.
func resolveOutputPath(explicit, lyricsPath string, cfg *config.Config) (string, error) {
	if strings.TrimSpace(explicit) != "" {
		return config.ExpandPath(explicit)
	}
	stem := strings.TrimSuffix(filepath.Base(lyricsPath), filepath.Ext(lyricsPath))
	if stem == "" {
		stem = "timeline"
	}
	return filepath.Join(cfg.Paths.OutputDir, stem+".timeline.json"), nil
}

func songLabel(title, artist string) string {
	if artist == "" {
		return title
	}
	return title + " - " + artist
}

func printSyncSummary(cmd *cobra.Command, s syncSummary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote timeline to %s\n", s.Output)
	fmt.Fprintf(out, "Lines: %d  Words: %d matched / %d total\n", s.Lines, s.MatchedWords, s.TotalWords)
	if s.OffsetApplied {
		fmt.Fprintf(out, "Global offset: %.2fs (applied)\n", s.GlobalOffset)
	}
}
