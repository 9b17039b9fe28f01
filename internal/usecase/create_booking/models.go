package create_booking

import (
	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	PetIDs     []string             // ID питомцев (не пустой список)
	CheckIn    types.Date           // Дата заезда
	CheckOut   types.Date           // Дата выезда (не входит в проживание)
	RoomNumber string               // Имя номера или пусто/UnassignedRoom
	Status     domain.BookingStatus // Начальный статус (по умолчанию pending)
	TotalPrice float64              // Стоимость, >= 0
	Notes      string               // Заметки
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
	Nights  int
}
