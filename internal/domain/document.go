package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Document полный снимок состояния отеля.
// Формат обмена с локальным файлом и удаленным хранилищем
type Document struct {
	Bookings        []Booking        `json:"bookings"`
	Pets            []Pet            `json:"pets"`
	Rooms           []Room           `json:"rooms"`
	PreCheckRecords []PreCheckRecord `json:"preCheckRecords"`
	CareLogs        []DailyCareLog   `json:"careLogs"`
	Timestamp       time.Time        `json:"timestamp"`
}

// documentEnvelope используется при разборе, чтобы отличить отсутствующий ключ от пустого списка
type documentEnvelope struct {
	Bookings        *[]Booking        `json:"bookings"`
	Pets            *[]Pet            `json:"pets"`
	Rooms           *[]Room           `json:"rooms"`
	PreCheckRecords *[]PreCheckRecord `json:"preCheckRecords"`
	CareLogs        *[]DailyCareLog   `json:"careLogs"`
	Timestamp       time.Time         `json:"timestamp"`
}

// ParseDocument разбирает документ. bookings, pets и rooms обязательны,
// отсутствующие preCheckRecords и careLogs становятся пустыми списками
func ParseDocument(data []byte) (*Document, error) {
	var env documentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: malformed document: %v", ErrValidationFailed, err)
	}

	if env.Bookings == nil || env.Pets == nil || env.Rooms == nil {
		return nil, fmt.Errorf("%w: document must contain bookings, pets and rooms", ErrValidationFailed)
	}

	doc := &Document{
		Bookings:        *env.Bookings,
		Pets:            *env.Pets,
		Rooms:           *env.Rooms,
		PreCheckRecords: []PreCheckRecord{},
		CareLogs:        []DailyCareLog{},
		Timestamp:       env.Timestamp,
	}
	if env.PreCheckRecords != nil {
		doc.PreCheckRecords = *env.PreCheckRecords
	}
	if env.CareLogs != nil {
		doc.CareLogs = *env.CareLogs
	}

	return doc, nil
}

// Marshal сериализует документ в JSON
func (d *Document) Marshal() ([]byte, error) {
	return json.Marshal(d)
}
