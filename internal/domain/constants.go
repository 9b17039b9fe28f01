package domain

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Room registry constants
const (
	StandardRoomCount = 10
	VIPRoomCount      = 5
	TotalRooms        = StandardRoomCount + VIPRoomCount

	// UnassignedRoom значение roomNumber у брони без номера
	UnassignedRoom = "unassigned"

	vipRoomPrefix = "VIP 0"
	vipTag        = "VIP"
)

// Business validation constants
const (
	MaxNotesLength = 1000
	MaxPetsPerStay = 10
)

// InactiveStatuses статусы, которые не занимают номер
// Используется движком доступности и проверкой конфликтов
var InactiveStatuses = []BookingStatus{
	StatusCheckedOut,
	StatusCancelled,
}

// ActiveStatuses статусы, которые занимают номер на даты проживания
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
}
