package models

import (
	"time"

	"github.com/m04kA/PetHotelService/internal/domain"
)

// ExportBase64Response документ в base64 (формат страницы настроек)
type ExportBase64Response struct {
	Data string `json:"data"`
}

// ImportRequest документ в виде JSON строки или base64
type ImportRequest struct {
	Data string `json:"data"`
}

// DocumentSummary количество записей в документе
type DocumentSummary struct {
	Bookings        int       `json:"bookings"`
	Pets            int       `json:"pets"`
	Rooms           int       `json:"rooms"`
	PreCheckRecords int       `json:"preCheckRecords"`
	CareLogs        int       `json:"careLogs"`
	Timestamp       time.Time `json:"timestamp"`
}

// SyncResponse результат push/pull
type SyncResponse struct {
	SyncID    string          `json:"syncId"`
	Backend   string          `json:"backend"`
	Direction string          `json:"direction"`
	Document  DocumentSummary `json:"document"`
}

// Summarize считает записи документа
func Summarize(doc *domain.Document) DocumentSummary {
	return DocumentSummary{
		Bookings:        len(doc.Bookings),
		Pets:            len(doc.Pets),
		Rooms:           len(doc.Rooms),
		PreCheckRecords: len(doc.PreCheckRecords),
		CareLogs:        len(doc.CareLogs),
		Timestamp:       doc.Timestamp,
	}
}
