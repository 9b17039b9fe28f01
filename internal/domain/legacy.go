package domain

import (
	"encoding/json"
	"fmt"
)

// Подписи статусов из выгрузок старой версии панели администратора.
// Импорт документа переводит их в текущие значения
var legacyBookingStatuses = map[string]BookingStatus{
	"待處理":  StatusPending,
	"安排入住": StatusConfirmed,
	"已入住":  StatusCheckedIn,
	"已退房":  StatusCheckedOut,
	"已取消":  StatusCancelled,
}

var legacyRoomStatuses = map[string]RoomStatus{
	"空房":   RoomVacant,
	"入住中":  RoomOccupied,
	"清潔維護": RoomMaintenance,
	"已合併":  RoomCombined,
}

var legacyPetTypes = map[string]PetType{
	"貓":  PetCat,
	"其他": PetOther,
}

var legacyGenders = map[string]PetGender{
	"公":  GenderMale,
	"母":  GenderFemale,
	"未知": GenderUnknown,
}

// IsValid проверяет, что статус из закрытого перечисления
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomVacant, RoomOccupied, RoomMaintenance, RoomCombined:
		return true
	}
	return false
}

// ParseRoomStatus принимает текущие значения и подписи старых выгрузок
func ParseRoomStatus(s string) (RoomStatus, error) {
	status := RoomStatus(s)
	if status.IsValid() {
		return status, nil
	}
	if legacy, ok := legacyRoomStatuses[s]; ok {
		return legacy, nil
	}
	return "", fmt.Errorf("%w: unknown room status %q", ErrValidationFailed, s)
}

func (s *RoomStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status, err := ParseRoomStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

func (t *PetType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if legacy, ok := legacyPetTypes[raw]; ok {
		*t = legacy
		return nil
	}
	*t = PetType(raw)
	return nil
}

func (g *PetGender) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if legacy, ok := legacyGenders[raw]; ok {
		*g = legacy
		return nil
	}
	*g = PetGender(raw)
	return nil
}
