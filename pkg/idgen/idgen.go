package idgen

import (
	"strconv"

	"github.com/google/uuid"
)

// Префиксы идентификаторов сущностей
const (
	PrefixBooking  = "b-"
	PrefixPet      = "p-"
	PrefixCareLog  = "log-"
	PrefixPreCheck = "pc-"
)

// UUID генератор идентификаторов вида <prefix><uuid v4>
type UUID struct{}

// NewID возвращает новый уникальный идентификатор с префиксом
func (UUID) NewID(prefix string) string {
	return prefix + uuid.NewString()
}

// Sequence детерминированный генератор для тестов: prefix1, prefix2, ...
type Sequence struct {
	n int
}

func (s *Sequence) NewID(prefix string) string {
	s.n++
	return prefix + strconv.Itoa(s.n)
}
