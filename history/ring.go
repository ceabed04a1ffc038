// Package history implements the two plain-text history rings (query and
// cmd-query) and the interactive-mode session snapshot.
package history

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// DefaultSize is used when --history-size/--cmd-history-size is not given.
const DefaultSize = 1000

// Ring is a fixed-capacity, oldest-first sequence of history entries
// backed by a plain-text file, one entry per line.
type Ring struct {
	path     string
	capacity int
	entries  []string
}

// Load reads path into a Ring. A missing file is not an error: it produces
// an empty ring that will be created on the first Append.
func Load(path string, capacity int) (*Ring, error) {
	if capacity <= 0 {
		capacity = DefaultSize
	}
	r := &Ring{path: path, capacity: capacity}
	if path == "" {
		return r, nil
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return r, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "history: open %q", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			r.entries = append(r.entries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "history: read %q", path)
	}
	r.truncate()
	return r, nil
}

// Entries returns the ring's contents, oldest first.
func (r *Ring) Entries() []string {
	return r.entries
}

// Len reports the number of entries.
func (r *Ring) Len() int {
	return len(r.entries)
}

// At returns the i'th entry, 0 being the oldest.
func (r *Ring) At(i int) string {
	if i < 0 || i >= len(r.entries) {
		return ""
	}
	return r.entries[i]
}

// Append adds query to the ring if it is non-empty and differs from the
// most recent entry, truncates to capacity, and rewrites the backing file.
// A write failure is returned to the caller to log, not to treat as fatal.
func (r *Ring) Append(query string) error {
	if query == "" {
		return nil
	}
	if len(r.entries) > 0 && r.entries[len(r.entries)-1] == query {
		return nil
	}
	r.entries = append(r.entries, query)
	r.truncate()
	return r.save()
}

func (r *Ring) truncate() {
	if len(r.entries) > r.capacity {
		r.entries = r.entries[len(r.entries)-r.capacity:]
	}
}

func (r *Ring) save() error {
	if r.path == "" {
		return nil
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "history: mkdir %q", dir)
		}
	}
	content := strings.Join(r.entries, "\n")
	if len(r.entries) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(r.path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "history: write %q", r.path)
	}
	return nil
}
