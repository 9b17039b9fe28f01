package models

// StatsResponse сводка для главной страницы
type StatsResponse struct {
	Date string `json:"date"`

	Occupied      int `json:"occupied"`
	CheckIns      int `json:"checkIns"`
	CheckOuts     int `json:"checkOuts"`
	OccupancyRate int `json:"occupancyRate"` // проценты, не больше 100

	Month           string  `json:"month"`
	Revenue         float64 `json:"revenue"`
	PrevRevenue     float64 `json:"prevRevenue"`
	RevenueGrowth   float64 `json:"growth"` // проценты
	ActiveBookings  int     `json:"activeBookings"`
	PendingBookings int     `json:"pendingBookings"`
}
