package get_room_schedule

import (
	"net/http"

	"github.com/m04kA/PetHotelService/internal/api/handlers"
	getRoomSchedule "github.com/m04kA/PetHotelService/internal/usecase/get_room_schedule"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	From  string        `json:"from"`
	To    string        `json:"to"`
	Dates []string      `json:"dates"`
	Rows  []ScheduleRow `json:"rows"`
}

// ScheduleRow строка номера
type ScheduleRow struct {
	Room  string         `json:"room"`
	Cells []ScheduleCell `json:"cells"`
}

// ScheduleCell ячейка номера на день
type ScheduleCell struct {
	Status    string `json:"status"`
	BookingID string `json:"bookingId,omitempty"`
	LockedBy  string `json:"lockedBy,omitempty"`
	IsStart   bool   `json:"isStart,omitempty"`
}

// ToUseCaseRequest собирает запрос из query: month или from/to, rooms
func ToUseCaseRequest(r *http.Request) (*getRoomSchedule.Request, error) {
	q := r.URL.Query()
	req := &getRoomSchedule.Request{
		Month: q.Get("month"),
		Rooms: handlers.QueryList(r, "rooms"),
	}
	if req.Month != "" {
		return req, nil
	}

	from, err := types.ParseDate(q.Get("from"))
	if err != nil {
		return nil, err
	}
	to, err := types.ParseDate(q.Get("to"))
	if err != nil {
		return nil, err
	}
	req.From, req.To = from, to
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomSchedule.Response) *ScheduleResponse {
	result := &ScheduleResponse{
		From:  resp.From.String(),
		To:    resp.To.String(),
		Dates: make([]string, 0, len(resp.Dates)),
		Rows:  make([]ScheduleRow, 0, len(resp.Rows)),
	}
	for _, d := range resp.Dates {
		result.Dates = append(result.Dates, d.String())
	}
	for _, row := range resp.Rows {
		item := ScheduleRow{Room: row.Room, Cells: make([]ScheduleCell, 0, len(row.Cells))}
		for _, c := range row.Cells {
			item.Cells = append(item.Cells, ScheduleCell{
				Status:    string(c.Kind),
				BookingID: c.BookingID,
				LockedBy:  c.LockedBy,
				IsStart:   c.IsStart,
			})
		}
		result.Rows = append(result.Rows, item)
	}
	return result
}
