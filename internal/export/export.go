// Package export writes a session's result history to disk as JSON or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/burjlab/ruhani/internal/spirit"
)

// Format selects the export file format.
type Format string

// Supported export formats.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ValidFormats contains all supported export formats.
var ValidFormats = map[Format]bool{
	FormatJSON: true,
	FormatCSV:  true,
}

// ParseFormat converts a user-facing string into a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !ValidFormats[f] {
		return "", fmt.Errorf("%w: unsupported export format %q (use json or csv)", spirit.ErrInvalidInput, s)
	}
	return f, nil
}

// DefaultBaseName returns the timestamped default file name, without
// extension, for an export started at now.
func DefaultBaseName(now time.Time) string {
	return "ruhani_" + now.Format("20060102_150405")
}

// Write exports results to a file in dir. If baseName is empty a timestamped
// default name is used. It returns the path of the written file. Exporting an
// empty history is an error.
func Write(results []spirit.Result, format Format, dir, baseName string) (string, error) {
	if len(results) == 0 {
		return "", fmt.Errorf("%w: no results to export", spirit.ErrInvalidInput)
	}
	if !ValidFormats[format] {
		return "", fmt.Errorf("%w: unsupported export format %q", spirit.ErrInvalidInput, format)
	}
	if baseName == "" {
		baseName = DefaultBaseName(time.Now())
	}

	path := filepath.Join(dir, baseName+"."+string(format))
	switch format {
	case FormatJSON:
		if err := writeJSON(results, path); err != nil {
			return "", err
		}
	case FormatCSV:
		if err := writeCSV(results, path); err != nil {
			return "", err
		}
	}
	return path, nil
}

func writeJSON(results []spirit.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}
	return nil
}

// csvHeader matches the traditional column names.
var csvHeader = []string{"الطريقة", "القيمة العددية", "الرقم المختزل", "التفسير", "الطابع الزمني"}

func writeCSV(results []spirit.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("export: write csv header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Method,
			fmt.Sprintf("%d", r.Value),
			fmt.Sprintf("%d", r.Reduced),
			strings.ReplaceAll(r.Interpretation, "\n", " | "),
			r.Timestamp.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("export: write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("export: flush csv: %w", err)
	}
	return nil
}
