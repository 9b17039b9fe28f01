package export

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/PetHotelService/internal/service/availability"
	"github.com/m04kA/PetHotelService/internal/usecase/get_room_schedule"
)

const (
	sheetName = "房況表"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	labelMaintenance = "維修中"
	labelLocked      = "連動鎖定"
)

// File готовый к отдаче файл
type File struct {
	Name string
	Data []byte
}

// Service выгрузка сетки занятости в xlsx
type Service struct {
	schedule    ScheduleBuilder
	bookingRepo BookingRepository
	petRepo     PetRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(schedule ScheduleBuilder, bookingRepo BookingRepository, petRepo PetRepository, logger Logger) *Service {
	return &Service{
		schedule:    schedule,
		bookingRepo: bookingRepo,
		petRepo:     petRepo,
		logger:      logger,
	}
}

// MonthlyBoard таблица "номер x день" за месяц YYYY-MM.
// В занятой ячейке имена питомцев, в заблокированной - номер, который ее держит
func (s *Service) MonthlyBoard(ctx context.Context, month string) (*File, error) {
	s.logger.Info("MonthlyBoard: month=%s", month)

	// 1. Сетка занятости
	grid, err := s.schedule.Execute(ctx, &get_room_schedule.Request{Month: month})
	if err != nil {
		if errors.Is(err, get_room_schedule.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: MonthlyBoard - schedule error: %v", ErrInternal, err)
	}

	// 2. Подписи ячеек: имена питомцев по брони
	labels, err := s.bookingLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: MonthlyBoard - repository error: %v", ErrInternal, err)
	}

	// 3. Таблица
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, fmt.Errorf("%w: create styles: %v", ErrInternal, err)
	}

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("房況表 %s", month))
	f.SetCellStyle(sheetName, "A1", "A1", styles.title)

	f.SetCellValue(sheetName, "A2", "房號")
	f.SetCellStyle(sheetName, "A2", "A2", styles.header)
	for i, date := range grid.Dates {
		cell, _ := excelize.CoordinatesToCellName(i+2, 2)
		f.SetCellValue(sheetName, cell, date.Time().Format("01-02"))
		f.SetCellStyle(sheetName, cell, cell, styles.header)
	}

	for r, row := range grid.Rows {
		rowIdx := r + 3
		nameCell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		f.SetCellValue(sheetName, nameCell, row.Room)
		f.SetCellStyle(sheetName, nameCell, nameCell, styles.header)

		for c, gridCell := range row.Cells {
			cell, _ := excelize.CoordinatesToCellName(c+2, rowIdx)
			value, style := cellContent(gridCell, labels, styles)
			if value != "" {
				f.SetCellValue(sheetName, cell, value)
			}
			if style != 0 {
				f.SetCellStyle(sheetName, cell, cell, style)
			}
		}
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	if len(grid.Dates) > 0 {
		last, _ := excelize.ColumnNumberToName(len(grid.Dates) + 1)
		f.SetColWidth(sheetName, "B", last, 14)
	}
	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      2,
		TopLeftCell: "B3",
		ActivePane:  "bottomRight",
	})

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("MonthlyBoard: failed to write workbook: %v", err)
		return nil, fmt.Errorf("%w: write workbook: %v", ErrInternal, err)
	}

	return &File{
		Name: fmt.Sprintf("room-board-%s.xlsx", month),
		Data: buf.Bytes(),
	}, nil
}

func (s *Service) bookingLabels(ctx context.Context) (map[string]string, error) {
	bookings, err := s.bookingRepo.AllBookings(ctx)
	if err != nil {
		return nil, err
	}
	pets, err := s.petRepo.ListPets(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(pets))
	for _, p := range pets {
		names[p.ID] = p.Name
	}

	labels := make(map[string]string, len(bookings))
	for _, b := range bookings {
		parts := make([]string, 0, len(b.PetIDs))
		for _, id := range b.PetIDs {
			if name, ok := names[id]; ok {
				parts = append(parts, name)
			}
		}
		if len(parts) == 0 {
			labels[b.ID] = b.ID
			continue
		}
		labels[b.ID] = strings.Join(parts, ", ")
	}
	return labels, nil
}

type styleSet struct {
	title       int
	header      int
	occupied    int
	locked      int
	maintenance int
}

func newStyles(f *excelize.File) (*styleSet, error) {
	fill := func(color string) *excelize.Style {
		return &excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		}
	}

	var (
		set styleSet
		err error
	)
	if set.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}); err != nil {
		return nil, err
	}
	if set.header, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return nil, err
	}
	if set.occupied, err = f.NewStyle(fill("#C6EFCE")); err != nil {
		return nil, err
	}
	if set.locked, err = f.NewStyle(fill("#D9D9D9")); err != nil {
		return nil, err
	}
	if set.maintenance, err = f.NewStyle(fill("#FCE4D6")); err != nil {
		return nil, err
	}
	return &set, nil
}

func cellContent(cell get_room_schedule.Cell, labels map[string]string, styles *styleSet) (string, int) {
	switch cell.Kind {
	case availability.KindOccupied:
		return labels[cell.BookingID], styles.occupied
	case availability.KindLocked:
		return fmt.Sprintf("%s (%s)", labelLocked, cell.LockedBy), styles.locked
	case availability.KindMaintenance:
		return labelMaintenance, styles.maintenance
	default:
		return "", 0
	}
}
