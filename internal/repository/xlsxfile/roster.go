// Package xlsxfile reads the roster reference spreadsheet. The file is
// maintained outside this system and is never written here.
package xlsxfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/hrtools-br/ausencias-backend-go/internal/domain/roster"
	"github.com/xuri/excelize/v2"
)

const nameColumn = "Nome_do_Colaborador"

type RosterRepository struct {
	path string
}

func NewRosterRepository(path string) *RosterRepository {
	return &RosterRepository{path: path}
}

// Names reads the employee names from the first sheet. The sheet must carry a
// Nome_do_Colaborador header column; names are de-duplicated and sorted.
func (r *RosterRepository) Names(ctx context.Context) ([]string, error) {
	file, err := excelize.OpenFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, roster.ErrRosterNotFound
		}
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("roster file has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read roster sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("roster sheet is empty")
	}

	col := -1
	for i, cell := range rows[0] {
		if strings.TrimSpace(cell) == nameColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("roster sheet is missing the %s column", nameColumn)
	}

	seen := make(map[string]struct{})
	var names []string
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[col])
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
