package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	outputDir  string
	historyDir string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		outputDir:  filepath.Join(base, "output"),
		historyDir: filepath.Join(base, "history"),
	}

	content := fmt.Sprintf(`[paths]
output_dir = %q
log_dir = %q
history_dir = %q

[history]
enabled = true

[logging]
level = "error"
format = "console"
`, env.outputDir, filepath.Join(base, "logs"), env.historyDir)

	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func writeDisabledHistoryConfig(t *testing.T, env *cliTestEnv, path string) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
output_dir = %q
log_dir = %q

[history]
enabled = false
`, env.outputDir, filepath.Join(env.baseDir, "logs"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substring string) {
	t.Helper()
	if !strings.Contains(output, substring) {
		t.Fatalf("expected output to contain %q, got:\n%s", substring, output)
	}
}

func writeLyricsFixture(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "song.lrc")
	content := "[ar:Test Artist]\n[00:00.00]hello world\n[00:05.00]goodbye now\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write lyrics fixture: %v", err)
	}
	return path
}

func writeTranscriptFixture(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "song.json")
	content := `{
  "segments": [
    {
      "text": "hello world",
      "start": 0.1,
      "end": 0.9,
      "words": [
        {"word": "hello", "start": 0.1, "end": 0.4},
        {"word": "world", "start": 0.4, "end": 0.9}
      ]
    },
    {
      "text": "goodbye now",
      "start": 5.2,
      "end": 6.0,
      "words": [
        {"word": "goodbye", "start": 5.2, "end": 5.6},
        {"word": "now", "start": 5.6, "end": 6.0}
      ]
    }
  ]
}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write transcript fixture: %v", err)
	}
	return path
}
