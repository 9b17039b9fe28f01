package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout формат календарной даты (ISO 8601)
const DateLayout = "2006-01-02"

// MonthLayout формат месяца
const MonthLayout = "2006-01"

// ErrInvalidDate возвращается при некорректной строке даты
var ErrInvalidDate = errors.New("types: invalid date format, expected YYYY-MM-DD")

// Date календарная дата без времени и часового пояса.
// Внутри хранится полночь UTC, поэтому сравнение и арифметика не зависят от локали.
type Date struct {
	t time.Time
}

// NewDate создает дату из года, месяца и дня
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf обрезает время до календарной даты (в часовом поясе самого времени)
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate парсит строку "YYYY-MM-DD"
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

// MustParseDate как ParseDate, но паникует (для тестов и констант)
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero проверяет, что дата не задана
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// String возвращает дату в формате "YYYY-MM-DD"
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Month возвращает месяц в формате "YYYY-MM"
func (d Date) Month() string {
	return d.t.Format(MonthLayout)
}

// Time возвращает полночь UTC этой даты
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// AddDays сдвигает дату на n дней
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil количество дней от d до other (отрицательное, если other раньше)
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// FirstOfMonth первое число месяца даты
func (d Date) FirstOfMonth() Date {
	return NewDate(d.t.Year(), d.t.Month(), 1)
}

// ParseMonth парсит "YYYY-MM" и возвращает первое число месяца
func ParseMonth(s string) (Date, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: month %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

// MarshalJSON сериализует дату как строку "YYYY-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON парсит дату из строки "YYYY-MM-DD"
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer для записи в БД
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.t, nil
}
