package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage keeps uploads on the local filesystem.
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	if cfg.BasePath == "" {
		cfg.BasePath = "./uploads"
	}

	if err := os.MkdirAll(cfg.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: cfg.BasePath,
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

// Save stores the file under a timestamp-prefixed name and returns its
// public URL. The prefix avoids collisions between identically named
// uploads.
func (s *LocalStorage) Save(ctx context.Context, filename string, reader io.Reader) (string, error) {
	name := time.Now().Format("20060102_150405_") + sanitize(filename)
	fullPath := filepath.Join(s.basePath, name)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

func (s *LocalStorage) Delete(ctx context.Context, filename string) error {
	return os.Remove(filepath.Join(s.basePath, filepath.Base(filename)))
}

// sanitize strips path separators and whitespace from client-supplied
// filenames.
func sanitize(filename string) string {
	name := filepath.Base(filename)
	name = strings.ReplaceAll(name, " ", "_")
	return name
}
