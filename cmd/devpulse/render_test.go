package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderValidationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validation.jsonl")
	content := strings.Join([]string{
		`{"page":"/about","errors":[{"message":"missing title","line":3,"column":1}]}`,
		`not json`,
		`{"warnings":[{"message":"no page"}]}`,
		`{"page":"/blog","warnings":[{"message":"slow image"}]}`,
	}, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write feed file failed: %v", err)
	}

	out, err := renderValidationFile(path)
	if err != nil {
		t.Fatalf("renderValidationFile failed: %v", err)
	}

	if !strings.Contains(out, "Page validation") {
		t.Errorf("expected table title, got %q", out)
	}
	if !strings.Contains(out, "/about") || !strings.Contains(out, "/blog") {
		t.Errorf("expected both pages rendered, got %q", out)
	}
	if !strings.Contains(out, "3:1 missing title") {
		t.Errorf("expected positioned message, got %q", out)
	}
}

func TestRenderValidationFile_LaterRecordsReplaceEarlier(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validation.jsonl")
	content := strings.Join([]string{
		`{"page":"/about","errors":[{"message":"stale"}]}`,
		`{"page":"/about","errors":[{"message":"current"}]}`,
	}, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write feed file failed: %v", err)
	}

	out, err := renderValidationFile(path)
	if err != nil {
		t.Fatalf("renderValidationFile failed: %v", err)
	}

	if strings.Contains(out, "stale") {
		t.Errorf("expected earlier report replaced, got %q", out)
	}
	if !strings.Contains(out, "current") {
		t.Errorf("expected latest report rendered, got %q", out)
	}
}

func TestRenderValidationFile_Missing(t *testing.T) {
	if _, err := renderValidationFile(filepath.Join(t.TempDir(), "absent.jsonl")); err == nil {
		t.Error("expected error for missing file")
	}
}
