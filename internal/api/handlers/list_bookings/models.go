package list_bookings

import (
	"net/http"
	"strconv"

	"github.com/m04kA/PetHotelService/internal/service/bookings/models"
)

// ToServiceRequest собирает фильтр из query параметров
func ToServiceRequest(r *http.Request) (*models.ListBookingsRequest, error) {
	q := r.URL.Query()

	req := &models.ListBookingsRequest{
		Month: q.Get("month"),
		From:  q.Get("from"),
		To:    q.Get("to"),
	}
	if v := q.Get("room"); v != "" {
		req.RoomNumber = &v
	}
	if v := q.Get("petId"); v != "" {
		req.PetID = &v
	}
	if v := q.Get("status"); v != "" {
		req.Status = &v
	}
	if v := q.Get("includeInactive"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = include
	}

	return req, nil
}
