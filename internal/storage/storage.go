package storage

import (
	"context"
	"io"
)

// Storage stores product images. Only a local-disk backend exists; the
// interface keeps handlers independent of where files land.
type Storage interface {
	// Save writes the file and returns its public URL.
	Save(ctx context.Context, filename string, reader io.Reader) (string, error)
	Delete(ctx context.Context, filename string) error
}

type Config struct {
	BasePath string
	BaseURL  string
}

func NewStorage(cfg Config) (Storage, error) {
	return NewLocalStorage(cfg)
}
