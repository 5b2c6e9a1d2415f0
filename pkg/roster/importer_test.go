package roster

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	x := excelize.NewFile()
	defer x.Close()
	sheet := x.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, x.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, x.Write(&buf))
	return &buf
}

func TestParseMapsHeaderAliases(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Full Name", "E-Mail", "Tel", "Team"},
		{"Ann", "ann@example.org", "0812345678", "north"},
		{"Ben", "ben@example.org", "", ""},
	})

	rows, errs, err := Parse(buf)
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Line: 2, Name: "Ann", Email: "ann@example.org", Phone: "0812345678", Group: "north"}, rows[0])
	assert.Equal(t, "ben@example.org", rows[1].Email)
}

func TestParseReportsBadRowsWithoutAborting(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Name", "Email"},
		{"Ann", "ann@example.org"},
		{"Ben", "not-an-email"},
		{"Cid", ""},
		{"", ""}, // fully blank, silently skipped
		{"Dee", "dee@example.org"},
	})

	rows, errs, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ann@example.org", rows[0].Email)
	assert.Equal(t, "dee@example.org", rows[1].Email)

	require.Len(t, errs, 2)
	assert.Equal(t, 3, errs[0].Line)
	assert.Contains(t, errs[0].Reason, "not-an-email")
	assert.Equal(t, 4, errs[1].Line)
}

func TestParseRejectsMissingEmailColumn(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Name", "Phone"},
		{"Ann", "0812345678"},
	})
	_, _, err := Parse(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email column")
}
