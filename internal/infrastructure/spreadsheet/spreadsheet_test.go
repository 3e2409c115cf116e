package spreadsheet

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/acadreview/reviewhub/internal/core/domain"
)

func workbookBytes(t *testing.T, header []interface{}, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestRosterParser_Parse(t *testing.T) {
	buf := workbookBytes(t,
		[]interface{}{"moduleCode", "fullName", "facultyCode", "email"},
		[]interface{}{"AC31008", "Systems Programming", "SCI", "sp@dundee.ac.uk"},
		[]interface{}{"AC32009", "Databases", "SCI", ""},
	)

	rows, err := NewRosterParser().Parse(buf, "moduleCode")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "AC31008", rows[0].Code)
	assert.Equal(t, "Systems Programming", rows[0].FullName)
	assert.Equal(t, "SCI", rows[0].FacultyCode)
	assert.Equal(t, "sp@dundee.ac.uk", rows[0].Email)
	assert.Empty(t, rows[1].Email)
}

// Missing columns surface as empty fields, never as an error.
func TestRosterParser_Parse_MissingColumns(t *testing.T) {
	buf := workbookBytes(t,
		[]interface{}{"routeCode"},
		[]interface{}{"CS-BSC"},
	)

	rows, err := NewRosterParser().Parse(buf, "routeCode")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CS-BSC", rows[0].Code)
	assert.Empty(t, rows[0].FullName)
	assert.Empty(t, rows[0].FacultyCode)
}

func TestRosterParser_Parse_HeaderCaseInsensitive(t *testing.T) {
	buf := workbookBytes(t,
		[]interface{}{"ModuleCode", "FULLNAME", "facultycode"},
		[]interface{}{"AC31008", "Systems Programming", "SCI"},
	)

	rows, err := NewRosterParser().Parse(buf, "moduleCode")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Systems Programming", rows[0].FullName)
}

func TestRosterParser_Parse_NotAWorkbook(t *testing.T) {
	_, err := NewRosterParser().Parse(strings.NewReader("just,a,csv\n1,2,3"), "moduleCode")
	require.Error(t, err)
}

func TestSnapshotWriter_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewSnapshotWriter(dir)

	modules := []domain.ModuleReview{
		{ID: "1", ModuleCode: "AC31008", FullName: "Systems Programming", Status: domain.StatusCompleted, Email: "sp@dundee.ac.uk"},
		{ID: "2", ModuleCode: "AC32009", FullName: "Databases", Status: domain.StatusNotStarted},
	}
	programs := []domain.ProgramReview{
		{ID: "3", RouteCode: "CS-BSC", FullName: "BSc Computing", Status: domain.StatusInProgress},
	}

	path, err := w.Write(modules, programs)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "academic_year_"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	modRows, err := f.GetRows("Modules")
	require.NoError(t, err)
	require.Len(t, modRows, 3, "header plus two data rows")
	assert.Equal(t, "AC31008", modRows[1][1])
	assert.Equal(t, string(domain.StatusCompleted), modRows[1][16])

	progRows, err := f.GetRows("Programs")
	require.NoError(t, err)
	require.Len(t, progRows, 2)
	assert.Equal(t, "CS-BSC", progRows[1][1])
}

func TestSnapshotWriter_DistinctFilenames(t *testing.T) {
	dir := t.TempDir()
	w := NewSnapshotWriter(dir)

	first, err := w.Write(nil, nil)
	require.NoError(t, err)
	second, err := w.Write(nil, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "snapshots never overwrite")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
