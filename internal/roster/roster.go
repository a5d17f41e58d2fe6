// Package roster reads player name lists: one name per line, blank
// lines and '#' comments skipped, duplicates removed case-insensitively
// keeping the first spelling seen.
package roster

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/teamsmith/teamsmith/internal/errors"
)

// Read parses a roster from r.
func Read(r io.Reader) ([]string, error) {
	var names []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key := strings.ToLower(line)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading roster")
	}
	return names, nil
}

// ReadFile parses a roster from a file on disk.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening roster file")
	}
	defer f.Close()
	return Read(f)
}

// Dedupe removes case-insensitive duplicates from names, keeping the
// first spelling. Used for rosters passed as command-line arguments.
func Dedupe(names []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}
