// Package export renders the current record snapshot as a downloadable XLSX
// spreadsheet. It is a read-only projection of the store, never a second
// persistence path.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/hrtools-br/ausencias-backend-go/internal/domain/absence"
	"github.com/hrtools-br/ausencias-backend-go/internal/pkg/dates"
	"github.com/xuri/excelize/v2"
)

// Filename is the suggested download name for the export.
const Filename = "registros_ausencias.xlsx"

// Header columns in sheet order, matching the on-screen table layout.
var columns = []string{"Nome_do_Colaborador", "Tipo", "Motivo", "Início", "Dias", "Término", "Retorno", "CID"}

type ExportService struct {
	absences absence.Service
}

func NewExportService(absences absence.Service) *ExportService {
	return &ExportService{absences: absences}
}

// Generate builds the spreadsheet for the current listing order. Dates are
// shown dd/mm/yyyy; unknown dates render blank.
func (s *ExportService) Generate(ctx context.Context) ([]byte, error) {
	records := s.absences.List(ctx)

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &columns); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for i, record := range records {
		row := []interface{}{
			record.EmployeeName,
			string(record.Category),
			record.Reason,
			displayDate(record.StartDate),
			record.Days,
			displayDate(record.EndDate),
			displayDate(record.ReturnDate()),
			record.CID,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address export row: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write export row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}
	return buf.Bytes(), nil
}

func displayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dates.DisplayLayout)
}
