// Package journal keeps an append-only activity log of catalog mutations.
// Entries are plain text lines tagged with a UUID v7, so the file sorts by
// creation time even across processes. A nil *Journal is safe to use; every
// method is a no-op on it, and write failures are swallowed so journaling can
// never break a catalog operation.
package journal

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileName is the journal file name inside the data directory.
const FileName = "journal.log"

// Journal appends catalog events to a text file.
type Journal struct {
	path string
	mu   sync.Mutex
}

// Open returns a Journal writing to dataDir/journal.log.
func Open(dataDir string) (*Journal, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &Journal{path: filepath.Join(dataDir, FileName)}, nil
}

// Path returns the file backing this journal.
func (j *Journal) Path() string {
	if j == nil {
		return ""
	}
	return j.path
}

// Record appends one event line.
func (j *Journal) Record(format string, args ...any) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	line := fmt.Sprintf("%s %s %s\n",
		time.Now().UTC().Format(time.RFC3339),
		id,
		strings.TrimSpace(fmt.Sprintf(format, args...)),
	)
	file, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = file.WriteString(line)
}

// Tail returns up to maxLines of the most recent entries, oldest first.
func (j *Journal) Tail(maxLines int) []string {
	if j == nil || maxLines <= 0 {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()

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
	if scanner.Err() != nil {
		return nil
	}
	return lines
}
