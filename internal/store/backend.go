package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ErrNoRecord signals that the backing record has never been written.
var ErrNoRecord = errors.New("store: no backing record")

// Backend persists the portal aggregate as one opaque blob under one key.
// Implementations do not interpret the payload; the Store owns encoding.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Store(ctx context.Context, data []byte) error
}

// FileBackend keeps the blob in a single file on disk. This is the default
// backend, standing in for per-browser local storage.
type FileBackend struct {
	path string
}

// NewFileBackend ensures the parent directory exists and returns a handle.
func NewFileBackend(path string) (*FileBackend, error) {
	if path == "" {
		path = "./data/portal.json"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &FileBackend{path: path}, nil
}

func (b *FileBackend) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoRecord
		}
		return nil, err
	}
	return data, nil
}

func (b *FileBackend) Store(_ context.Context, data []byte) error {
	return os.WriteFile(b.path, data, 0o644)
}

// RedisBackend keeps the blob under a single Redis key.
type RedisBackend struct {
	client *redis.Client
	key    string
}

// NewRedisBackend wraps an existing client. The key defaults to the portal
// database name used by the web client.
func NewRedisBackend(client *redis.Client, key string) *RedisBackend {
	if key == "" {
		key = "itunaSchoolDB"
	}
	return &RedisBackend{client: client, key: key}
}

func (b *RedisBackend) Load(ctx context.Context) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoRecord
		}
		return nil, err
	}
	return data, nil
}

func (b *RedisBackend) Store(ctx context.Context, data []byte) error {
	return b.client.Set(ctx, b.key, data, 0).Err()
}

// MemoryBackend holds the blob in process memory. Used by tests and useful
// as a throwaway backend for local demos.
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(_ context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.set {
		return nil, ErrNoRecord
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

func (b *MemoryBackend) Store(_ context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = make([]byte, len(data))
	copy(b.data, data)
	b.set = true
	return nil
}
