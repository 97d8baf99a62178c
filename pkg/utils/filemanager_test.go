package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestGenerateOutputFileName(t *testing.T) {
	t.Parallel()

	name := GenerateOutputFileName("{event}_{date}", "Summer Gala 2026")
	wantPrefix := "Summer Gala 2026_" + time.Now().Format("2006-01-02")
	if name != wantPrefix {
		t.Fatalf("name: want %q, got %q", wantPrefix, name)
	}

	name = GenerateOutputFileName("report_{uuid}", "ignored")
	uuidRe := regexp.MustCompile(`^report_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	if !uuidRe.MatchString(name) {
		t.Fatalf("uuid token not expanded: %q", name)
	}
}

func TestSanitizeFileName(t *testing.T) {
	t.Parallel()

	if got := SanitizeFileName(`Gala: "Night/Day"?`); strings.ContainsAny(got, `/\:*?"<>|`) {
		t.Fatalf("unsafe characters survived: %q", got)
	}
	if got := SanitizeFileName("   "); got != "report" {
		t.Fatalf("blank name: want report, got %q", got)
	}
}

func TestEnsureDirectoryAndFileExists(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDirectory(dir); err != nil {
		t.Fatalf("EnsureDirectory: %v", err)
	}
	if FileExists(dir) {
		t.Fatalf("FileExists should be false for a directory")
	}

	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !FileExists(file) {
		t.Fatalf("FileExists should be true for a regular file")
	}
}
