package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var _ Store = (*File)(nil)

// File keeps the whole map as one JSON snapshot on disk, rewritten on every
// mutation. Fine for catalog-sized data, not a general database.
type File struct {
	mu sync.Mutex

	path string

	values map[string]string
	loaded bool
}

func NewFile(path string) *File {
	return &File{
		path: path,
	}
}

// load reads the snapshot at most once. A failed read does not mark the
// store loaded: flushing after one would replace the snapshot on disk with
// an empty map.
func (f *File) load() error {
	if f.loaded {
		return nil
	}

	values := make(map[string]string)

	data, err := os.ReadFile(f.path)

	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err == nil {
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
	}

	f.values = values
	f.loaded = true

	return nil
}

func (f *File) flush() error {
	data, err := json.Marshal(f.values)

	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(f.path, data, 0o644)
}

func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return "", false, err
	}

	value, ok := f.values[key]

	return value, ok, nil
}

func (f *File) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return err
	}

	f.values[key] = value

	return f.flush()
}

func (f *File) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return err
	}

	delete(f.values, key)

	return f.flush()
}

func (f *File) Keys(ctx context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return nil, err
	}

	var keys []string

	for key := range f.values {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys, nil
}

func (f *File) MultiRemove(ctx context.Context, keys []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return err
	}

	for _, key := range keys {
		delete(f.values, key)
	}

	return f.flush()
}
