// Package journal provides append-only logging of filesystem mutations
// performed during a naming run, for auditing what the conflict flow did
// to existing files. One confirmed entry is written per mutation; the
// interactive flow performs at most a handful per run, so there is no
// batch crash window worth two-phase intent logging.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Entry represents a single filesystem mutation.
type Entry struct {
	Timestamp time.Time `json:"ts"`
	Type      string    `json:"type"`          // "rename", "trash", "create"
	Source    string    `json:"src"`           // file name before the mutation
	Dest      string    `json:"dst,omitempty"` // file name after the mutation
}

// Writer appends journal entries to a JSONL file. Each Log call writes one
// JSON line and syncs to ensure durability.
type Writer struct {
	file    *os.File
	encoder *json.Encoder
}

// NewWriter creates a journal writer at the given path. The parent directory
// must already exist. The file is created if it does not exist, or appended
// to if it does.
func NewWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	return &Writer{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Log writes an entry to the journal and syncs to disk.
func (w *Writer) Log(entry Entry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	if err := w.encoder.Encode(entry); err != nil {
		return fmt.Errorf("encode journal entry: %w", err)
	}

	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("sync journal: %w", err)
	}

	return nil
}

// Close closes the underlying file.
func (w *Writer) Close() error {
	return w.file.Close()
}

// Read returns all entries from the journal at path, in write order.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			return entries, fmt.Errorf("decode journal line %d: %w", lineNum, err)
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("read journal: %w", err)
	}

	return entries, nil
}
