// Package csvfile persists the absence record sequence as a flat CSV file,
// one row per record, rewritten whole on every save.
//
// The file layout is inherited from earlier versions of the tool, so Load
// transparently migrates legacy column names and back-fills columns that old
// files lack. Cross-process concurrent writers are not supported: two
// processes saving the same file race last-writer-wins.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/hrtools-br/ausencias-backend-go/internal/domain/absence"
	"github.com/hrtools-br/ausencias-backend-go/internal/pkg/dates"
)

// Current column names, in file order.
const (
	colEmployeeName = "Nome_do_Colaborador"
	colStartDate    = "Data_de_Inicio"
	colDays         = "Dias"
	colEndDate      = "Data_Final"
	colCID          = "CID"
	colCategory     = "Tipo"
	colReason       = "Motivo"
)

var header = []string{colEmployeeName, colStartDate, colDays, colEndDate, colCID, colCategory, colReason}

// legacyColumns maps column names written by earlier versions onto the
// current names. Old description columns collapse into Motivo.
var legacyColumns = map[string]string{
	"Nome do Colaborador": colEmployeeName,
	"Data de Início":      colStartDate,
	"Data Final":          colEndDate,
	"Descricao CID":       colReason,
	"Descricao_CID":       colReason,
	"Descricao_do_CID":    colReason,
}

type AbsenceRepository struct {
	path string
}

func NewAbsenceRepository(path string) *AbsenceRepository {
	return &AbsenceRepository{path: path}
}

// Load reads the data file into memory, assigning a fresh ID to every record.
// A missing file yields an empty sequence. An unreadable or corrupt file also
// yields an empty sequence, after logging a warning; persistence trouble must
// never stop the registry from starting.
func (r *AbsenceRepository) Load(ctx context.Context) ([]absence.Record, error) {
	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []absence.Record{}, nil
		}
		slog.Warn("data file unreadable, starting with an empty store", "path", r.path, "error", err)
		return []absence.Record{}, nil
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		slog.Warn("data file corrupt, starting with an empty store", "path", r.path, "error", err)
		return []absence.Record{}, nil
	}
	if len(rows) == 0 {
		return []absence.Record{}, nil
	}

	index, err := columnIndex(rows[0])
	if err != nil {
		slog.Warn("data file header unusable, starting with an empty store", "path", r.path, "error", err)
		return []absence.Record{}, nil
	}

	records := make([]absence.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record, ok := parseRow(row, index)
		if !ok {
			continue
		}
		record.ID = uuid.NewString()
		records = append(records, record)
	}
	return records, nil
}

// Save overwrites the data file with the full sequence. The write goes to a
// temporary file first and is renamed into place, so a crash mid-write never
// leaves a truncated store behind.
func (r *AbsenceRepository) Save(ctx context.Context, records []absence.Record) error {
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(header); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(formatRow(record)); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to flush records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// columnIndex resolves header cells to column positions, translating legacy
// names. A file without an employee name column cannot be interpreted.
func columnIndex(headerRow []string) (map[string]int, error) {
	index := make(map[string]int, len(headerRow))
	for i, cell := range headerRow {
		name := strings.TrimSpace(cell)
		if current, ok := legacyColumns[name]; ok {
			name = current
		}
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	if _, ok := index[colEmployeeName]; !ok {
		return nil, fmt.Errorf("missing %s column", colEmployeeName)
	}
	return index, nil
}

func parseRow(row []string, index map[string]int) (absence.Record, bool) {
	cell := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	name := cell(colEmployeeName)
	if name == "" {
		// Rows without an employee name are invalid remnants; drop them.
		return absence.Record{}, false
	}

	record := absence.Record{
		EmployeeName: name,
		CID:          cell(colCID),
		Reason:       cell(colReason),
	}

	if start, err := dates.Parse(cell(colStartDate)); err == nil {
		record.StartDate = start
	}
	if days, err := strconv.Atoi(cell(colDays)); err == nil {
		record.Days = days
	}

	// Legacy back-fill: rows written before the Tipo column existed are
	// treated as Atestado, matching the historical meaning of the file.
	category := absence.Category(cell(colCategory))
	if category == "" {
		category = absence.CategoryMedicalCertificate
	}
	record.Category = category

	// End date is derived state; recompute it whenever the inputs allow and
	// fall back to the stored value for rows that predate strict dates.
	if end, _, err := dates.Calculate(record.StartDate, record.Days); err == nil && !record.StartDate.IsZero() {
		record.EndDate = end
	} else if end, err := dates.Parse(cell(colEndDate)); err == nil {
		record.EndDate = end
	}

	return record, true
}

func formatRow(r absence.Record) []string {
	start, end := "", ""
	if !r.StartDate.IsZero() {
		start = r.StartDate.Format(dates.Layout)
	}
	if !r.EndDate.IsZero() {
		end = r.EndDate.Format(dates.Layout)
	}
	return []string{
		r.EmployeeName,
		start,
		strconv.Itoa(r.Days),
		end,
		r.CID,
		string(r.Category),
		r.Reason,
	}
}
