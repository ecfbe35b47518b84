package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/logger"
)

// FileStore persists each key as a small file under a data directory.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a torn blob behind.
type FileStore struct {
	dir      string
	validate *validator.Validate
}

// NewFileStore creates the data directory if needed and returns a store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir, validate: validator.New()}, nil
}

func (s *FileStore) SaveSnapshot(ctx context.Context, snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
	}
	return s.writeKey(ctx, domain.StorageKeyGameState, data)
}

func (s *FileStore) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	data, err := s.readKey(domain.StorageKeyGameState)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	if err := s.validate.Struct(snap); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	return &snap, nil
}

func (s *FileStore) SaveCheckpoint(ctx context.Context, t time.Time) error {
	return s.writeKey(ctx, domain.StorageKeyCheckpoint, []byte(strconv.FormatInt(t.UnixMilli(), 10)))
}

func (s *FileStore) LoadCheckpoint(ctx context.Context) (*time.Time, error) {
	data, err := s.readKey(domain.StorageKeyCheckpoint)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	millis, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		// A corrupt checkpoint only costs the offline credit; don't fail the load.
		logger.FromContext(ctx).Warn("Discarding corrupt reconcile checkpoint", "error", err)
		return nil, nil
	}
	t := time.UnixMilli(millis)
	return &t, nil
}

func (s *FileStore) SaveDeviceID(ctx context.Context, id string) error {
	return s.writeKey(ctx, domain.StorageKeyDeviceID, []byte(id))
}

func (s *FileStore) LoadDeviceID(ctx context.Context) (string, error) {
	data, err := s.readKey(domain.StorageKeyDeviceID)
	if err != nil || data == nil {
		return "", err
	}
	return string(data), nil
}

// writeKey writes atomically: temp file in the same directory, then rename.
func (s *FileStore) writeKey(ctx context.Context, key string, data []byte) error {
	path := s.keyPath(key)

	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
	}

	logger.FromContext(ctx).Debug("Persisted local key", "key", key, "bytes", len(data))
	return nil
}

func (s *FileStore) readKey(key string) ([]byte, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
	}
	return data, nil
}

func (s *FileStore) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}
