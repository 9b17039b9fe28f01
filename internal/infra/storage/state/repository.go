package state

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/PetHotelService/internal/domain"
)

type txKey struct{}

// Repository in-memory хранилище состояния отеля: бронирования, питомцы, номера,
// осмотры и дневники ухода. Единственный источник правды для движка доступности.
//
// Запись сериализуется через mutex. Операции внутри DoSerializable выполняются
// под одной блокировкой и откатываются целиком, если fn вернула ошибку
type Repository struct {
	mu sync.RWMutex

	bookings  []*domain.Booking
	pets      []*domain.Pet
	rooms     []domain.Room
	preChecks []*domain.PreCheckRecord
	careLogs  []*domain.DailyCareLog

	version uint64
	now     func() time.Time
}

// NewRepository создает пустое состояние с номерами по умолчанию
func NewRepository() *Repository {
	return &Repository{
		rooms: domain.DefaultRooms(),
		now:   time.Now,
	}
}

// DoSerializable выполняет fn под эксклюзивной блокировкой.
// Методы репозитория, вызванные с txCtx, не берут блокировку повторно.
// При ошибке состояние возвращается к снимку на момент входа
func (r *Repository) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if IsInTransaction(ctx) {
		return fn(ctx)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	backup := r.snapshotLocked()
	version := r.version

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		r.restoreLocked(backup)
		r.version = version
		return err
	}
	return nil
}

// IsInTransaction проверяет, что контекст находится внутри DoSerializable
func IsInTransaction(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// Version счетчик изменений. Растет при каждой успешной записи
func (r *Repository) Version(ctx context.Context) uint64 {
	unlock := r.rlock(ctx)
	defer unlock()
	return r.version
}

// Snapshot полная копия состояния в виде документа
func (r *Repository) Snapshot(ctx context.Context) *domain.Document {
	unlock := r.rlock(ctx)
	defer unlock()

	doc := r.snapshotLocked()
	doc.Timestamp = r.now().UTC()
	return doc
}

// Restore заменяет все состояние содержимым документа
func (r *Repository) Restore(ctx context.Context, doc *domain.Document) error {
	unlock := r.lock(ctx)
	defer unlock()

	for i := range doc.Bookings {
		if doc.Bookings[i].ID == "" {
			return ErrInvalidRecord
		}
	}
	for i := range doc.Pets {
		if doc.Pets[i].ID == "" {
			return ErrInvalidRecord
		}
	}

	r.restoreLocked(doc)
	r.version++
	return nil
}

func (r *Repository) snapshotLocked() *domain.Document {
	doc := &domain.Document{
		Bookings:        make([]domain.Booking, 0, len(r.bookings)),
		Pets:            make([]domain.Pet, 0, len(r.pets)),
		Rooms:           make([]domain.Room, 0, len(r.rooms)),
		PreCheckRecords: make([]domain.PreCheckRecord, 0, len(r.preChecks)),
		CareLogs:        make([]domain.DailyCareLog, 0, len(r.careLogs)),
	}
	for _, b := range r.bookings {
		doc.Bookings = append(doc.Bookings, *b.Clone())
	}
	for _, p := range r.pets {
		doc.Pets = append(doc.Pets, *p)
	}
	for _, room := range r.rooms {
		doc.Rooms = append(doc.Rooms, cloneRoom(room))
	}
	for _, rec := range r.preChecks {
		doc.PreCheckRecords = append(doc.PreCheckRecords, *rec)
	}
	for _, l := range r.careLogs {
		doc.CareLogs = append(doc.CareLogs, *l)
	}
	return doc
}

func (r *Repository) restoreLocked(doc *domain.Document) {
	r.bookings = make([]*domain.Booking, 0, len(doc.Bookings))
	for i := range doc.Bookings {
		r.bookings = append(r.bookings, doc.Bookings[i].Clone())
	}

	r.pets = make([]*domain.Pet, 0, len(doc.Pets))
	for i := range doc.Pets {
		p := doc.Pets[i]
		r.pets = append(r.pets, &p)
	}

	r.rooms = make([]domain.Room, 0, len(doc.Rooms))
	for _, room := range doc.Rooms {
		r.rooms = append(r.rooms, cloneRoom(room))
	}

	r.preChecks = make([]*domain.PreCheckRecord, 0, len(doc.PreCheckRecords))
	for i := range doc.PreCheckRecords {
		rec := doc.PreCheckRecords[i]
		r.preChecks = append(r.preChecks, &rec)
	}

	r.careLogs = make([]*domain.DailyCareLog, 0, len(doc.CareLogs))
	for i := range doc.CareLogs {
		l := doc.CareLogs[i]
		r.careLogs = append(r.careLogs, &l)
	}
}

// lock берет блокировку на запись, если вызов не внутри транзакции
func (r *Repository) lock(ctx context.Context) func() {
	if IsInTransaction(ctx) {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *Repository) rlock(ctx context.Context) func() {
	if IsInTransaction(ctx) {
		return func() {}
	}
	r.mu.RLock()
	return r.mu.RUnlock
}

func cloneRoom(room domain.Room) domain.Room {
	room.Tags = append([]string{}, room.Tags...)
	return room
}
