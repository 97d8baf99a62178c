// =============================================================================
// Event Ticket Sales Summary - File Manager
// =============================================================================
//
// Small file-system helpers for the report pipeline: output directory
// bootstrap and report file naming.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnsureDirectory creates the directory (and parents) if it does not exist.
func EnsureDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// GenerateOutputFileName builds a report file name from a format string,
// without extension.
//
// Placeholders:
//
//	{uuid}      - A random UUID
//	{timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//	{date}      - Current date (YYYY-MM-DD)
//	{event}     - Event name, sanitized for the filesystem
//
// Example:
//
//	format: "{event}_{date}"
//	event:  "Summer Gala 2026"
//	output: "Summer Gala 2026_2026-08-30"
func GenerateOutputFileName(format, eventName string) string {
	now := time.Now()

	replacements := map[string]string{
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("2006-01-02"),
		"{event}":     SanitizeFileName(eventName),
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// SanitizeFileName strips characters that are unsafe in file names. An event
// name that sanitizes to nothing becomes "report".
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	var sb strings.Builder
	for _, r := range name {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			sb.WriteRune('_')
		default:
			sb.WriteRune(r)
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "report"
	}
	return out
}

// FileExists reports whether the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
