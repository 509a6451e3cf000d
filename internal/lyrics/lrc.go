package lyrics

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// lrcTimestamp matches a single "[mm:ss.xx]" tag followed by the line text.
var lrcTimestamp = regexp.MustCompile(`^\[(\d+):(\d+(?:\.\d*)?)\](.*)$`)

// ParseLRC parses line-timed LRC content into ordered reference lines.
// Metadata tags ("[ar:...]" and friends) and lines with empty text are
// skipped. The result is sorted by start time.
func ParseLRC(content string) []Line {
	var lines []Line
	for _, raw := range strings.Split(content, "\n") {
		match := lrcTimestamp.FindStringSubmatch(strings.TrimSpace(raw))
		if match == nil {
			continue
		}
		minutes, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		seconds, err := strconv.ParseFloat(match[2], 64)
		if err != nil {
			continue
		}
		text := strings.TrimSpace(match[3])
		if text == "" {
			continue
		}
		lines = append(lines, Line{
			Text:  text,
			Start: float64(minutes)*60 + seconds,
		})
	}
	SortByStart(lines)
	return lines
}

// LoadLRC reads and parses an LRC file.
func LoadLRC(path string) ([]Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lrc: %w", err)
	}
	return ParseLRC(string(data)), nil
}
