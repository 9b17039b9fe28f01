package state

import (
	"context"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// SavePreCheck создает или перезаписывает осмотр для пары (бронирование, питомец)
func (r *Repository) SavePreCheck(ctx context.Context, record *domain.PreCheckRecord) error {
	unlock := r.lock(ctx)
	defer unlock()

	stored := *record
	for i, existing := range r.preChecks {
		if existing.Key() == record.Key() {
			r.preChecks[i] = &stored
			r.version++
			return nil
		}
	}

	r.preChecks = append(r.preChecks, &stored)
	r.version++
	return nil
}

// GetPreCheck осмотр для пары (бронирование, питомец)
func (r *Repository) GetPreCheck(ctx context.Context, bookingID, petID string) (*domain.PreCheckRecord, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	for _, rec := range r.preChecks {
		if rec.BookingID == bookingID && rec.PetID == petID {
			result := *rec
			return &result, nil
		}
	}
	return nil, ErrPreCheckNotFound
}

// ListPreChecks осмотры по бронированию
func (r *Repository) ListPreChecks(ctx context.Context, bookingID string) ([]*domain.PreCheckRecord, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	result := make([]*domain.PreCheckRecord, 0)
	for _, rec := range r.preChecks {
		if rec.BookingID == bookingID {
			c := *rec
			result = append(result, &c)
		}
	}
	return result, nil
}

// UpsertCareLog записывает дневник. Запись с тем же (питомец, дата) заменяется,
// при этом сохраняется ее исходный ID
func (r *Repository) UpsertCareLog(ctx context.Context, log *domain.DailyCareLog) (*domain.DailyCareLog, error) {
	unlock := r.lock(ctx)
	defer unlock()

	stored := *log
	for i, existing := range r.careLogs {
		if existing.Key() == log.Key() {
			stored.ID = existing.ID
			r.careLogs[i] = &stored
			r.version++
			result := stored
			return &result, nil
		}
	}

	r.careLogs = append(r.careLogs, &stored)
	r.version++
	result := stored
	return &result, nil
}

// ListCareLogsByDate дневники за дату
func (r *Repository) ListCareLogsByDate(ctx context.Context, date types.Date) ([]*domain.DailyCareLog, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	result := make([]*domain.DailyCareLog, 0)
	for _, l := range r.careLogs {
		if l.Date.Equal(date) {
			c := *l
			result = append(result, &c)
		}
	}
	return result, nil
}

// ListCareLogsByPet дневники питомца в порядке добавления
func (r *Repository) ListCareLogsByPet(ctx context.Context, petID string) ([]*domain.DailyCareLog, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	result := make([]*domain.DailyCareLog, 0)
	for _, l := range r.careLogs {
		if l.PetID == petID {
			c := *l
			result = append(result, &c)
		}
	}
	return result, nil
}
