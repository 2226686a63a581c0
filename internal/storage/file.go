package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/founderstack/internal/filex"
)

// FileSlot stores each key as <dir>/<key>.json.
type FileSlot struct {
	dir string
}

// NewFileSlot creates dir if needed.
func NewFileSlot(dir string) (*FileSlot, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &FileSlot{dir: abs}, nil
}

func (f *FileSlot) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid slot key %q", key)
	}
	return filepath.Join(f.dir, key+".json"), nil
}

func (f *FileSlot) Get(_ context.Context, key string) ([]byte, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot[%s]: %w", key, err)
	}
	return data, nil
}

func (f *FileSlot) Set(_ context.Context, key string, value []byte) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := filex.WriteAtomic(p, value, 0o600); err != nil {
		return fmt.Errorf("write slot[%s]: %w", key, err)
	}
	return nil
}

func (f *FileSlot) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		p, err := f.path(k)
		if err != nil {
			return err
		}
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("delete slot[%s]: %w", k, err)
		}
	}
	return nil
}
