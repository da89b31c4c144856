package provider

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestChecksumCompute(t *testing.T) {
	path := writeFile(t, "hello")

	tests := []struct {
		algorithm string
		want      string
	}{
		{"crc32", "3610a686"},
		{"md5", "5d41402abc4b2a76b9719d911017c592"},
		{"sha256", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			c, err := NewChecksum(tt.algorithm)
			if err != nil {
				t.Fatalf("NewChecksum() error = %v", err)
			}
			got, err := c.Compute(path)
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Compute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChecksumUnknownAlgorithm(t *testing.T) {
	if _, err := NewChecksum("sha1"); err == nil {
		t.Error("NewChecksum() should reject unsupported algorithms")
	}
}

func TestChecksumHeader(t *testing.T) {
	c, err := NewChecksum("sha256")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Header(); got != "SHA-256" {
		t.Errorf("Header() = %q, want SHA-256", got)
	}
}

func TestChecksumMissingFile(t *testing.T) {
	c, err := NewChecksum("md5")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Compute("/no/such/file"); err == nil {
		t.Error("Compute() should fail for a missing file")
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain text", "just some words", "text/plain"},
		{"html", "<!DOCTYPE html><html></html>", "text/html"},
		{"png", "\x89PNG\r\n\x1a\n", "image/png"},
		{"empty", "", "text/plain"},
	}

	p := NewContentType()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Compute(writeFile(t, tt.content))
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Compute() = %q, want %q", got, tt.want)
			}
		})
	}
}
