package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tams-cso/tams-club-cal-sub001/config"
	"github.com/tams-cso/tams-club-cal-sub001/internal/repository"
	"github.com/tams-cso/tams-club-cal-sub001/internal/schedule"
)

var (
	ErrExportNoReservations = errors.New("no reservations in that month")
	ErrExportGenerateFail   = errors.New("generating the spreadsheet failed")
)

// ExportService renders a room's monthly reservation sheet as an .xlsx
// download. The buffer and suggested filename go back to the handler, which
// sets the response headers.
type ExportService interface {
	ExportRoomMonth(ctx context.Context, room string, year int, month time.Month) (*bytes.Buffer, string, error)
}

type exportService struct {
	cfg    *config.Config
	repo   *repository.Repository
	clock  schedule.Clock
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(cfg *config.Config, repo *repository.Repository, clock schedule.Clock, logger *zap.Logger) ExportService {
	return &exportService{cfg: cfg, repo: repo, clock: clock, logger: logger}
}

// ExportRoomMonth writes one row per reservation block, ordered by day.
// Times are shown in the calendar's civil timezone.
func (s *exportService) ExportRoomMonth(ctx context.Context, room string, year int, month time.Month) (*bytes.Buffer, string, error) {
	first := s.clock.CivilDate(year, month, 1)
	next := first.AddMonths(1)

	acts, err := s.repo.Activity.ListRoomReservationsInRange(ctx, room, first.UnixMilli(), next.UnixMilli())
	if err != nil {
		s.logger.Error("load room reservations failed", zap.Error(err))
		return nil, "", err
	}

	blocks := schedule.DecomposeReservations(s.clock, acts, s.cfg.Calendar.VisibleStartHour)
	grid := schedule.GroupRoomMonth(s.clock, blocks, room, year, month)

	total := 0
	for _, day := range grid.Days {
		total += len(day.Blocks)
	}
	if total == 0 {
		return nil, "", ErrExportNoReservations
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Reservations"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 24)
	f.SetColWidth(sheetName, "D", "E", 10)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	title := fmt.Sprintf("%s - %s %d", s.roomLabel(room), month, year)
	f.SetCellValue(sheetName, "A1", title)
	f.MergeCell(sheetName, "A1", "E1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	row := 2
	f.SetCellValue(sheetName, cell("A", row), "Date")
	f.SetCellValue(sheetName, cell("B", row), "Activity")
	f.SetCellValue(sheetName, cell("C", row), "Club")
	f.SetCellValue(sheetName, cell("D", row), "Start")
	f.SetCellValue(sheetName, cell("E", row), "End")

	row = 3
	for _, day := range grid.Days {
		for _, b := range day.Blocks {
			f.SetCellValue(sheetName, cell("A", row), day.DateISO)
			f.SetCellValue(sheetName, cell("B", row), b.Activity.Name)
			f.SetCellValue(sheetName, cell("C", row), b.Activity.ClubName)
			f.SetCellValue(sheetName, cell("D", row), s.clock.ToCivil(b.StartMs).Format("15:04"))
			f.SetCellValue(sheetName, cell("E", row), s.clock.ToCivil(b.EndMs).Format("15:04"))
			row++
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write spreadsheet failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("%s_%04d-%02d.xlsx", room, year, int(month))
	return buf, filename, nil
}

func (s *exportService) roomLabel(room string) string {
	for _, r := range s.cfg.Rooms {
		if r.Value == room {
			return r.Label
		}
	}
	return room
}

// ── helpers ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
