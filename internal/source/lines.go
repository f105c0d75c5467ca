// Package source reads raw course lines from files.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// maxLineBytes bounds a single course line.
const maxLineBytes = 1 << 20

// ReadLines returns every non-blank line of the file at path.
func ReadLines(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrSourceUnavailable, "file name cannot be empty")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrSourceUnavailable,
			fmt.Sprintf("cannot open file '%s': %v", path, err))
	}
	defer f.Close()

	lines, err := ReadLinesFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// ReadLinesFrom returns every non-blank line read from r. A trailing carriage
// return is stripped so files with CRLF endings load the same way.
func ReadLinesFrom(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrSourceUnavailable,
			fmt.Sprintf("failed to read course lines: %v", err))
	}

	if len(lines) == 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrSourceUnavailable, "no course lines found")
	}
	return lines, nil
}

// Exists reports whether path names a readable regular file.
func Exists(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
