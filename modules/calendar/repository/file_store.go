package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"salon-api/core/logger"
	"salon-api/modules/calendar/entity"
)

// FileTokenStore keeps every record in a single JSON object keyed by uid.
// All uids share one file, so the whole read-modify-write cycle runs under
// one mutex; without it a concurrent save for one uid could clobber
// another uid's entry.
type FileTokenStore struct {
	path string
	mu   sync.Mutex
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Save(ctx context.Context, uid string, record entity.TokenRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readAll()
	if err != nil {
		logger.Error("FileTokenStore:Save:Read:Error", "error", err, "path", s.path)
		return err
	}

	record.CreatedAt = time.Now().UnixMilli()
	data[uid] = record

	return s.writeAll(data)
}

func (s *FileTokenStore) Get(ctx context.Context, uid string) (*entity.TokenRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readAll()
	if err != nil {
		// Fail open to "disconnected": callers only need a boolean answer.
		logger.Error("FileTokenStore:Get:Error", "error", err, "path", s.path)
		return nil, nil
	}

	record, ok := data[uid]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (s *FileTokenStore) Delete(ctx context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readAll()
	if err != nil {
		logger.Error("FileTokenStore:Delete:Read:Error", "error", err, "path", s.path)
		return err
	}

	if _, ok := data[uid]; !ok {
		return nil
	}
	delete(data, uid)

	return s.writeAll(data)
}

// readAll loads the full key space. Callers must hold the mutex.
func (s *FileTokenStore) readAll() (map[string]entity.TokenRecord, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]entity.TokenRecord{}, nil
		}
		return nil, fmt.Errorf("reading token store: %w", err)
	}
	if len(raw) == 0 {
		return map[string]entity.TokenRecord{}, nil
	}

	var data map[string]entity.TokenRecord
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing token store: %w", err)
	}
	return data, nil
}

// writeAll rewrites the whole file. Callers must hold the mutex.
func (s *FileTokenStore) writeAll(data map[string]entity.TokenRecord) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding token store: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("writing token store: %w", err)
	}
	return nil
}
