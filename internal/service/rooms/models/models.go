package models

import "github.com/m04kA/PetHotelService/internal/domain"

// RoomResponse номер с парными номерами
type RoomResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Status       string   `json:"status"`
	IsVIP        bool     `json:"isLarge"`
	CombinedWith string   `json:"combinedWith,omitempty"`
	Floor        string   `json:"floor"`
	Column       int      `json:"column"`
	Tags         []string `json:"tags"`
	Partners     []string `json:"partners"`
}

// RoomListResponse список номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// SetMaintenanceRequest включение/выключение обслуживания
type SetMaintenanceRequest struct {
	Maintenance bool `json:"maintenance"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) RoomResponse {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return RoomResponse{
		ID:           r.ID,
		Name:         r.Name,
		Status:       string(r.Status),
		IsVIP:        r.IsVIP,
		CombinedWith: r.CombinedWith,
		Floor:        string(r.Floor),
		Column:       r.Column,
		Tags:         tags,
		Partners:     domain.PartnersOf(r.Name),
	}
}
