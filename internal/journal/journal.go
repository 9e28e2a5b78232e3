package journal

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Level is the severity of a journal entry.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Journal appends timestamped lines to a plain text file so review activity
// can be inspected after the viewer exits. A nil *Journal is safe to use;
// every method becomes a no-op.
type Journal struct {
	path string
	file *os.File
}

// Open creates (or reuses) the journal file at path, creating parent
// directories as needed.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("journal: ensure dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("journal: open: %w", err)
	}
	return &Journal{path: path, file: f}, nil
}

// Path returns the file backing this journal.
func (j *Journal) Path() string {
	if j == nil {
		return ""
	}
	return j.path
}

// Close releases the file handle.
func (j *Journal) Close() error {
	if j == nil || j.file == nil {
		return nil
	}
	return j.file.Close()
}

func (j *Journal) append(level Level, format string, args ...any) {
	if j == nil || j.file == nil {
		return
	}
	msg := strings.TrimSpace(fmt.Sprintf(format, args...))
	fmt.Fprintf(j.file, "%s %-5s %s\n", time.Now().Format("15:04:05"), level, msg)
}

// Info records an informational entry.
func (j *Journal) Info(format string, args ...any) { j.append(LevelInfo, format, args...) }

// Warn records a warning entry.
func (j *Journal) Warn(format string, args ...any) { j.append(LevelWarn, format, args...) }

// Error records an error entry.
func (j *Journal) Error(format string, args ...any) { j.append(LevelError, format, args...) }

// Tail returns up to maxLines of the most recent entries, oldest first.
func (j *Journal) Tail(maxLines int) []string {
	if j == nil || maxLines <= 0 {
		return nil
	}
	file, err := os.Open(j.path)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if len(lines) > maxLines {
			lines = lines[1:]
		}
	}
	return lines
}
