package snapshot

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/syncstore"
	"github.com/m04kA/PetHotelService/internal/service/snapshot/models"
)

const (
	directionPush = "push"
	directionPull = "pull"
	directionSave = "save"
	directionLoad = "load"
)

// Service экспорт/импорт документа, локальное автосохранение и удаленная синхронизация
type Service struct {
	repo     StateRepository
	local    Store
	localKey string
	remote   Store
	metrics  Metrics
	logger   Logger

	mu         sync.Mutex
	savedAtVer uint64
	saved      bool
}

// NewService создает сервис. remote может быть nil, тогда push/pull возвращают ErrSyncDisabled
func NewService(repo StateRepository, local Store, localKey string, remote Store, metrics Metrics, logger Logger) *Service {
	return &Service{
		repo:     repo,
		local:    local,
		localKey: localKey,
		remote:   remote,
		metrics:  metrics,
		logger:   logger,
	}
}

// RemoteBackend имя удаленного хранилища или пустая строка
func (s *Service) RemoteBackend() string {
	if s.remote == nil {
		return ""
	}
	return s.remote.Name()
}

// Export документ состояния в JSON
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	data, err := s.repo.Snapshot(ctx).Marshal()
	if err != nil {
		return nil, fmt.Errorf("%w: Export - marshal: %v", ErrInternal, err)
	}
	return data, nil
}

// ExportBase64 документ состояния в base64
func (s *Service) ExportBase64(ctx context.Context) (*models.ExportBase64Response, error) {
	data, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ExportBase64Response{Data: base64.StdEncoding.EncodeToString(data)}, nil
}

// Import заменяет состояние документом. Принимает JSON или его base64
func (s *Service) Import(ctx context.Context, raw []byte) (*models.DocumentSummary, error) {
	doc, err := decodeDocument(raw)
	if err != nil {
		s.logger.Warn("Import: rejected document: %v", err)
		return nil, err
	}

	if err := s.apply(ctx, doc); err != nil {
		return nil, err
	}

	summary := models.Summarize(doc)
	s.logger.Info("Import: state replaced (bookings=%d, pets=%d, rooms=%d)",
		summary.Bookings, summary.Pets, summary.Rooms)
	return &summary, nil
}

// Push отправляет текущее состояние в удаленное хранилище
func (s *Service) Push(ctx context.Context, syncID string) (*models.SyncResponse, error) {
	if s.remote == nil {
		return nil, ErrSyncDisabled
	}
	if err := syncstore.ValidateKey(syncID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSyncID, err)
	}

	doc := s.repo.Snapshot(ctx)
	data, err := doc.Marshal()
	if err != nil {
		return nil, fmt.Errorf("%w: Push - marshal: %v", ErrInternal, err)
	}

	if err := s.remote.Save(ctx, syncID, data); err != nil {
		s.observe(s.remote.Name(), directionPush, "error")
		s.logger.Error("Push: %s store failed for %s: %v", s.remote.Name(), syncID, err)
		return nil, fmt.Errorf("%w: Push - store error: %v", ErrInternal, err)
	}

	s.observe(s.remote.Name(), directionPush, "ok")
	s.logger.Info("Push: state pushed to %s as %s", s.remote.Name(), syncID)

	return &models.SyncResponse{
		SyncID:    syncID,
		Backend:   s.remote.Name(),
		Direction: directionPush,
		Document:  models.Summarize(doc),
	}, nil
}

// Pull заменяет состояние документом из удаленного хранилища
func (s *Service) Pull(ctx context.Context, syncID string) (*models.SyncResponse, error) {
	if s.remote == nil {
		return nil, ErrSyncDisabled
	}
	if err := syncstore.ValidateKey(syncID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSyncID, err)
	}

	data, err := s.remote.Load(ctx, syncID)
	if err != nil {
		if errors.Is(err, syncstore.ErrNotFound) {
			s.observe(s.remote.Name(), directionPull, "not_found")
			return nil, ErrSyncNotFound
		}
		s.observe(s.remote.Name(), directionPull, "error")
		s.logger.Error("Pull: %s store failed for %s: %v", s.remote.Name(), syncID, err)
		return nil, fmt.Errorf("%w: Pull - store error: %v", ErrInternal, err)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		s.observe(s.remote.Name(), directionPull, "invalid")
		return nil, err
	}
	if err := s.apply(ctx, doc); err != nil {
		s.observe(s.remote.Name(), directionPull, "invalid")
		return nil, err
	}

	s.observe(s.remote.Name(), directionPull, "ok")
	s.logger.Info("Pull: state replaced from %s/%s", s.remote.Name(), syncID)

	return &models.SyncResponse{
		SyncID:    syncID,
		Backend:   s.remote.Name(),
		Direction: directionPull,
		Document:  models.Summarize(doc),
	}, nil
}

// LoadLocal восстанавливает состояние из локального снимка.
// false - снимка нет, состояние остается исходным (номера по умолчанию)
func (s *Service) LoadLocal(ctx context.Context) (bool, error) {
	data, err := s.local.Load(ctx, s.localKey)
	if err != nil {
		if errors.Is(err, syncstore.ErrNotFound) {
			s.markSaved(ctx)
			return false, nil
		}
		return false, fmt.Errorf("%w: LoadLocal: %v", ErrInternal, err)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return false, err
	}
	if err := s.apply(ctx, doc); err != nil {
		return false, err
	}

	s.observe(s.local.Name(), directionLoad, "ok")
	s.markSaved(ctx)
	return true, nil
}

// SaveLocal пишет снимок, если с прошлого сохранения были изменения.
// Возвращает true, если запись была
func (s *Service) SaveLocal(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := s.repo.Version(ctx)
	if s.saved && version == s.savedAtVer {
		return false, nil
	}

	data, err := s.repo.Snapshot(ctx).Marshal()
	if err != nil {
		return false, fmt.Errorf("%w: SaveLocal - marshal: %v", ErrInternal, err)
	}
	if err := s.local.Save(ctx, s.localKey, data); err != nil {
		s.observe(s.local.Name(), directionSave, "error")
		return false, fmt.Errorf("%w: SaveLocal: %v", ErrInternal, err)
	}

	s.observe(s.local.Name(), directionSave, "ok")
	s.saved = true
	s.savedAtVer = version
	return true, nil
}

// RunAutosave сохраняет снимок каждые interval до отмены ctx, затем делает финальное сохранение.
// interval <= 0 - только финальное сохранение
func (s *Service) RunAutosave(ctx context.Context, interval time.Duration) {
	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-tick:
			if written, err := s.SaveLocal(ctx); err != nil {
				s.logger.Error("Autosave: %v", err)
			} else if written {
				s.logger.Info("Autosave: snapshot written")
			}
		case <-ctx.Done():
			// ctx уже отменен, финальная запись идет с фоновым контекстом
			if _, err := s.SaveLocal(context.Background()); err != nil {
				s.logger.Error("Autosave: final save failed: %v", err)
			}
			return
		}
	}
}

func (s *Service) apply(ctx context.Context, doc *domain.Document) error {
	if len(doc.Rooms) == 0 {
		doc.Rooms = domain.DefaultRooms()
	}
	if err := s.repo.Restore(ctx, doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

func (s *Service) markSaved(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = true
	s.savedAtVer = s.repo.Version(ctx)
}

func (s *Service) observe(backend, direction, result string) {
	if s.metrics != nil {
		s.metrics.IncSyncOperation(backend, direction, result)
	}
}

// decodeDocument разбирает JSON документ; если вход не начинается с '{', сначала декодирует base64
func decodeDocument(raw []byte) (*domain.Document, error) {
	data := bytes.TrimSpace(raw)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	if data[0] != '{' {
		decoded, err := base64.StdEncoding.DecodeString(string(data))
		if err != nil {
			return nil, fmt.Errorf("%w: neither JSON nor base64: %v", ErrInvalidDocument, err)
		}
		data = bytes.TrimSpace(decoded)
	}

	doc, err := domain.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}
