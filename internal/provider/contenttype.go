package provider

import (
	"net/http"
	"os"
	"strings"
)

// ContentType sniffs a file's content type from its first 512 bytes
type ContentType struct{}

// NewContentType creates a content type provider
func NewContentType() *ContentType {
	return &ContentType{}
}

// Compute reads the sniff window and returns the detected media type
// without parameters, e.g. "text/plain"
func (c *ContentType) Compute(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		// Empty files sniff as text
		return "text/plain", nil
	}

	detected := http.DetectContentType(buf[:n])
	if idx := strings.IndexByte(detected, ';'); idx >= 0 {
		detected = detected[:idx]
	}
	return strings.TrimSpace(detected), nil
}
