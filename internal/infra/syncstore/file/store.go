package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m04kA/PetHotelService/internal/infra/syncstore"
)

// Store снимки в каталоге на диске: один файл <key>.json на ключ.
// Запись идет через временный файл и rename, поэтому оборванная запись не портит прошлый снимок
type Store struct {
	dir string
}

// NewStore создает хранилище в каталоге dir (создается при первой записи)
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Name имя бэкенда для логов и метрик
func (s *Store) Name() string {
	return "file"
}

// Save записывает снимок
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	if err := syncstore.ValidateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("file.Save: create dir %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("file.Save: create temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("file.Save: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("file.Save: close: %w", err)
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("file.Save: rename: %w", err)
	}
	return nil
}

// Load читает снимок. Отсутствующий файл - syncstore.ErrNotFound
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	if err := syncstore.ValidateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, syncstore.ErrNotFound
		}
		return nil, fmt.Errorf("file.Load: %w", err)
	}
	return data, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
