package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// RoomStatus ручной статус номера. Occupied вычисляется из бронирований,
// вручную выставляется только Maintenance
type RoomStatus string

const (
	RoomVacant      RoomStatus = "vacant"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomCombined    RoomStatus = "combined"
)

// Floor этаж/ряд номера на карте отеля
type Floor string

const (
	FloorUpper Floor = "upper"
	FloorLower Floor = "lower"
)

// Room номер отеля
type Room struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Status       RoomStatus `json:"status"`
	IsVIP        bool       `json:"isLarge"`
	CombinedWith string     `json:"combinedWith,omitempty"`
	Floor        Floor      `json:"floor"`
	Column       int        `json:"column"`
	Tags         []string   `json:"tags"`
}

// IsMaintenance true, если номер выведен на уборку/обслуживание
func (r *Room) IsMaintenance() bool {
	return r.Status == RoomMaintenance
}

// AllRoomNames возвращает имена всех 15 номеров в фиксированном порядке:
// "1".."10", затем "VIP 01".."VIP 05"
func AllRoomNames() []string {
	names := make([]string, 0, TotalRooms)
	for i := 1; i <= StandardRoomCount; i++ {
		names = append(names, strconv.Itoa(i))
	}
	for i := 1; i <= VIPRoomCount; i++ {
		names = append(names, vipName(i))
	}
	return names
}

// IsValidRoom проверяет, что номер есть в реестре
func IsValidRoom(name string) bool {
	_, _, ok := parseRoomName(name)
	return ok
}

// ValidateRoom возвращает ErrInvalidRoom для неизвестного номера
func ValidateRoom(name string) error {
	if !IsValidRoom(name) {
		return fmt.Errorf("%w: %q", ErrInvalidRoom, name)
	}
	return nil
}

// IsVIPRoom true для "VIP 01".."VIP 05"
func IsVIPRoom(name string) bool {
	vip, _, ok := parseRoomName(name)
	return ok && vip
}

// PartnerOf возвращает основной парный номер.
// Стандартный n (1..5) <-> "VIP 0n", стандартный n (6..10) -> "VIP 0(n-5)", "VIP 0n" -> n
func PartnerOf(name string) (string, bool) {
	vip, n, ok := parseRoomName(name)
	if !ok {
		return "", false
	}
	if vip {
		return strconv.Itoa(n), true
	}
	if n <= VIPRoomCount {
		return vipName(n), true
	}
	return vipName(n - VIPRoomCount), true
}

// PartnersOf возвращает все номера, сблокированные с данным.
// VIP номер физически объединяет две стандартные клетки (n и n+5),
// поэтому у VIP два партнера, у стандартного номера - один
func PartnersOf(name string) []string {
	vip, n, ok := parseRoomName(name)
	if !ok {
		return nil
	}
	if vip {
		return []string{strconv.Itoa(n), strconv.Itoa(n + VIPRoomCount)}
	}
	partner, _ := PartnerOf(name)
	return []string{partner}
}

// DefaultRooms начальный набор номеров (все свободны)
func DefaultRooms() []Room {
	rooms := make([]Room, 0, TotalRooms)
	for i := 0; i < StandardRoomCount; i++ {
		floor := FloorUpper
		if i >= VIPRoomCount {
			floor = FloorLower
		}
		rooms = append(rooms, Room{
			ID:     fmt.Sprintf("r%d", i+1),
			Name:   strconv.Itoa(i + 1),
			Status: RoomVacant,
			Floor:  floor,
			Column: i%VIPRoomCount + 1,
			Tags:   []string{},
		})
	}
	for i := 0; i < VIPRoomCount; i++ {
		rooms = append(rooms, Room{
			ID:     fmt.Sprintf("vip%d", i+1),
			Name:   vipName(i + 1),
			Status: RoomVacant,
			IsVIP:  true,
			Floor:  FloorUpper,
			Column: i + 1,
			Tags:   []string{vipTag},
		})
	}
	return rooms
}

func vipName(n int) string {
	return fmt.Sprintf("%s%d", vipRoomPrefix, n)
}

// parseRoomName разбирает имя номера: (isVIP, номер, ok)
func parseRoomName(name string) (bool, int, bool) {
	if strings.HasPrefix(name, vipRoomPrefix) {
		digits := strings.TrimPrefix(name, vipRoomPrefix)
		if len(digits) != 1 {
			return false, 0, false
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n < 1 || n > VIPRoomCount {
			return false, 0, false
		}
		return true, n, true
	}

	n, err := strconv.Atoi(name)
	if err != nil || n < 1 || n > StandardRoomCount || strconv.Itoa(n) != name {
		return false, 0, false
	}
	return false, n, true
}
