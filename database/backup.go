package database

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Backup copies the database file into dir under a timestamped name and
// returns the path of the copy.
func Backup(databasePath, dir string) (string, error) {
	src, err := os.Open(databasePath)
	if err != nil {
		return "", fmt.Errorf("failed to open database file: %w", err)
	}
	defer src.Close()

	timestamp := time.Now().Format("20060102_150405")
	target := filepath.Join(dir, fmt.Sprintf("names_backup_%s.db", timestamp))

	dst, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(target)
		return "", fmt.Errorf("failed to copy database file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to flush backup file: %w", err)
	}
	return target, nil
}
