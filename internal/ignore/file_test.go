// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-18
// Last Modified: 2026-10-18

package ignore

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFactFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fact file: %v", err)
	}
	return path
}

func TestFileExists(t *testing.T) {
	path := writeFactFile(t, "")
	if !NewFile(path).Exists() {
		t.Error("expected existing file to be reported")
	}

	missing := filepath.Join(t.TempDir(), DefaultFileName)
	if NewFile(missing).Exists() {
		t.Error("expected missing file to be reported absent")
	}
}

func TestFileLines(t *testing.T) {
	path := writeFactFile(t, "author:jeff\r\nlabel:bug\ntitle:*WIP\n")

	lines, err := NewFile(path).Lines()
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	want := []string{"author:jeff", "label:bug", "title:*WIP"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Lines() = %q, want %q", lines, want)
	}
}

func TestFileFacts(t *testing.T) {
	path := writeFactFile(t, "author:jeff\nlabel:enhancement\ntitle:*duplicate\ntitle:!exact-title-to-keep\n")

	facts, err := NewFile(path).Facts()
	if err != nil {
		t.Fatalf("Facts: %v", err)
	}
	if facts.Len() != 4 {
		t.Errorf("Len() = %d, want 4", facts.Len())
	}
}

func TestFileFactsBlankLineFails(t *testing.T) {
	path := writeFactFile(t, "author:jeff\n\ntitle:x\n")

	_, err := NewFile(path).Facts()
	if !errors.Is(err, ErrUnsupportedSyntax) {
		t.Fatalf("expected ErrUnsupportedSyntax, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestFileFactsMissing(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "nope")).Facts()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
}

func TestParseLines(t *testing.T) {
	facts, err := ParseLines("label:wontfix\nauthor:*renovate\n")
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	ignore, err := IgnoreIssue(Issue{Title: "Update deps", Author: "renovate[bot]"}, facts)
	if err != nil {
		t.Fatalf("IgnoreIssue: %v", err)
	}
	if !ignore {
		t.Error("expected renovate issue to be ignored")
	}

	if _, err := ParseLines("label:ok\nnot a fact\n"); !errors.Is(err, ErrUnsupportedSyntax) {
		t.Errorf("expected ErrUnsupportedSyntax, got %v", err)
	}
}

func TestFileLongLine(t *testing.T) {
	title := strings.Repeat("x", 70*1024)
	path := writeFactFile(t, "label:bug\ntitle:"+title+"\n")

	facts, err := NewFile(path).Facts()
	if err != nil {
		t.Fatalf("Facts: %v", err)
	}
	patterns, err := facts.Patterns("title")
	if err != nil {
		t.Fatalf("Patterns: %v", err)
	}
	if len(patterns) != 1 || patterns[0] != title {
		t.Errorf("long title fact was not read intact (got %d patterns)", len(patterns))
	}

	ignored, err := IgnoresTitle(title, facts)
	if err != nil || !ignored {
		t.Errorf("IgnoresTitle(long title) = %v, %v; want true", ignored, err)
	}
}
