package qrcode

import (
	"fmt"
	"os"
	"path/filepath"

	qr "github.com/skip2/go-qrcode"
)

// EnsureFile generates a QR PNG encoding content at dir/filename unless
// one already exists, and returns the file path.
func EnsureFile(dir, filename, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create QR directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := qr.WriteFile(content, qr.Medium, 256, path); err != nil {
		return "", fmt.Errorf("write QR file: %w", err)
	}

	return path, nil
}
