package xlsxfile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hrtools-br/ausencias-backend-go/internal/domain/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeRoster(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "colaboradores.xlsx")

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestNames(t *testing.T) {
	path := writeRoster(t, [][]interface{}{
		{"Nome_do_Colaborador", "Setor"},
		{"Maria Silva", "RH"},
		{"João Souza", "TI"},
		{"Maria Silva", "RH"},
		{"  ", ""},
		{"Ana Lima", "TI"},
	})
	repo := NewRosterRepository(path)

	names, err := repo.Names(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Ana Lima", "João Souza", "Maria Silva"}, names)
}

func TestNamesMissingFile(t *testing.T) {
	repo := NewRosterRepository(filepath.Join(t.TempDir(), "nope.xlsx"))

	_, err := repo.Names(context.Background())

	assert.True(t, errors.Is(err, roster.ErrRosterNotFound))
}

func TestNamesMissingColumn(t *testing.T) {
	path := writeRoster(t, [][]interface{}{
		{"Nome", "Setor"},
		{"Maria Silva", "RH"},
	})
	repo := NewRosterRepository(path)

	_, err := repo.Names(context.Background())

	assert.Error(t, err)
}
