package core

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

var (
	// ErrNotCSV is returned for uploads whose name does not end in .csv.
	ErrNotCSV = errors.New("invalid file type: only .csv files are accepted")

	// ErrFileTooLarge is returned when an upload exceeds the configured size.
	ErrFileTooLarge = errors.New("file too large")

	// ErrNoInput is returned when a request carries neither a file nor text.
	ErrNoInput = errors.New("no file provided")

	// ErrAnalysisNotFound is returned for unknown history IDs.
	ErrAnalysisNotFound = errors.New("analysis not found")
)

// DefaultFileName names analyses submitted as raw text.
const DefaultFileName = "pasted.csv"

const utf8BOM = "\uFEFF"

// ValidateFileName accepts names ending in .csv, in any letter case.
func ValidateFileName(name string) error {
	if !strings.EqualFold(filepath.Ext(name), ".csv") {
		return fmt.Errorf("%w: %q", ErrNotCSV, name)
	}
	return nil
}

// readInput reads at most limit bytes from r and returns them as text with a
// leading byte order mark removed and invalid UTF-8 replaced.
func readInput(r io.Reader, limit int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w: exceeds %d bytes", ErrFileTooLarge, limit)
	}
	return sanitizeText(string(data)), nil
}

func sanitizeText(s string) string {
	s = strings.TrimPrefix(s, utf8BOM)
	return strings.ToValidUTF8(s, "\uFFFD")
}
