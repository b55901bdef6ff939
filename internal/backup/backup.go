// Package backup снимает копии всего хранилища в два именованных
// слота (weekly/monthly). В слоте живет не более одной записи, новая
// замещает старую только после успешной сериализации и записи.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/storage"
)

const (
	weeklyMaxAge  = 7 * 24 * time.Hour
	monthlyMaxAge = 30 * 24 * time.Hour
)

type Service struct {
	store storage.Store
	now   func() time.Time
}

func NewService(store storage.Store) *Service {
	return NewServiceWithClock(store, time.Now)
}

// NewServiceWithClock позволяет подменить часы в тестах.
func NewServiceWithClock(store storage.Store, now func() time.Time) *Service {
	return &Service{store: store, now: now}
}

func slotKey(kind domain.BackupKind) string {
	if kind == domain.BackupMonthly {
		return storage.KeyMonthlyBackup
	}
	return storage.KeyWeeklyBackup
}

// Snapshot копирует все ключи хранилища (кроме самих слотов) в один
// снимок и перезаписывает слот вида. При любой ошибке предыдущий
// снимок остается нетронутым.
func (s *Service) Snapshot(ctx context.Context, kind domain.BackupKind) (*domain.Backup, error) {
	if !kind.Valid() {
		return nil, domain.NewValidationError("unknown backup kind " + string(kind))
	}

	keys, err := s.store.Keys(ctx)
	if err != nil {
		return nil, domain.NewStorageError("list keys", err)
	}

	payload := make(map[string]string, len(keys))
	for _, key := range keys {
		if key == storage.KeyWeeklyBackup || key == storage.KeyMonthlyBackup {
			continue
		}
		value, ok, err := s.store.Get(ctx, key)
		if err != nil {
			return nil, domain.NewStorageError("read "+key, err)
		}
		if ok {
			payload[key] = value
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.NewStorageError("marshal payload", err)
	}

	now := s.now()
	record := domain.Backup{
		ID:        fmt.Sprintf("%s-%d", kind, now.UnixMilli()),
		Data:      string(data),
		Timestamp: now.UnixMilli(),
		Kind:      kind,
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return nil, domain.NewStorageError("marshal backup", err)
	}
	if err := s.store.Set(ctx, slotKey(kind), string(raw)); err != nil {
		return nil, domain.NewStorageError("write backup slot", err)
	}

	return &record, nil
}

// Get возвращает текущее содержимое слота; пустой слот - nil без ошибки.
func (s *Service) Get(ctx context.Context, kind domain.BackupKind) (*domain.Backup, error) {
	if !kind.Valid() {
		return nil, domain.NewValidationError("unknown backup kind " + string(kind))
	}

	raw, ok, err := s.store.Get(ctx, slotKey(kind))
	if err != nil {
		return nil, domain.NewStorageError("read backup slot", err)
	}
	if !ok {
		return nil, nil
	}

	var record domain.Backup
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, domain.NewStorageError("decode backup slot", err)
	}
	return &record, nil
}

// EnsureFresh проверяет возраст каждого слота: отсутствующий или
// устаревший (7 дней для weekly, 30 для monthly) снимается заново.
func (s *Service) EnsureFresh(ctx context.Context) error {
	if err := s.ensureKind(ctx, domain.BackupWeekly, weeklyMaxAge); err != nil {
		return err
	}
	return s.ensureKind(ctx, domain.BackupMonthly, monthlyMaxAge)
}

func (s *Service) ensureKind(ctx context.Context, kind domain.BackupKind, maxAge time.Duration) error {
	record, err := s.Get(ctx, kind)
	if err != nil {
		// Нечитаемый слот пересоздаем.
		_, err = s.Snapshot(ctx, kind)
		return err
	}
	if record != nil && s.now().Sub(record.Time()) <= maxAge {
		return nil
	}
	_, err = s.Snapshot(ctx, kind)
	return err
}
