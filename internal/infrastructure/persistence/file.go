package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"voyagebj-service/internal/domain/repository"
)

// FileMedium stores one file per key under a directory
type FileMedium struct {
	mu    sync.Mutex
	dir   string
	quota int64
}

// NewFileMedium creates the directory if needed and returns a medium rooted there
func NewFileMedium(dir string, quota int64) (*FileMedium, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &FileMedium{dir: dir, quota: quota}, nil
}

func (m *FileMedium) path(key string) string {
	return filepath.Join(m.dir, url.PathEscape(key)+".json")
}

// Get reads the file for key
func (m *FileMedium) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Set writes value to a temporary file and renames it over the key's file
func (m *FileMedium) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	target := m.path(key)
	if m.quota > 0 {
		used, err := m.usage(target)
		if err != nil {
			return err
		}
		if need := used + entrySize(key, value); need > m.quota {
			return fmt.Errorf("setting %q needs %d of %d bytes: %w", key, need, m.quota, repository.ErrQuotaExceeded)
		}
	}

	tmp, err := os.CreateTemp(m.dir, ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), target)
}

// Remove deletes the file for key
func (m *FileMedium) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := os.Remove(m.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// usage sums key plus value bytes of every stored entry except skip,
// the same accounting as MemoryMedium
func (m *FileMedium) usage(skip string) (int64, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if filepath.Join(m.dir, e.Name()) == skip {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		key, err := url.PathUnescape(strings.TrimSuffix(e.Name(), ".json"))
		if err != nil {
			key = e.Name()
		}
		total += int64(len(key)) + info.Size()
	}
	return total, nil
}
