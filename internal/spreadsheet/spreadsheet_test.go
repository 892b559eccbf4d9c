package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"CreditPathAI/internal/models"
)

func createTestXLSX(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sheet1")
	require.NoError(t, err)
	for _, rowData := range rows {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			row.AddCell().SetString(cellData)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

var header = []string{"loan_amnt", "annual_inc", "dti", "open_acc", "credit_age", "revol_util"}

func TestReadBorrowers_Basic(t *testing.T) {
	data := createTestXLSX(t, [][]string{
		header,
		{"500000", "1800000", "35.5", "8", "5.2", "45.3"},
		{"20000", "60000", "12", "3", "2", "80"},
	})

	rows, err := ReadBorrowers(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Number)
	assert.Equal(t, models.BorrowerInput{
		LoanAmnt: 500000, AnnualInc: 1800000, DTI: 35.5, OpenAcc: 8, CreditAge: 5.2, RevolUtil: 45.3,
	}, rows[0].Input)
	assert.Equal(t, 2, rows[1].Number)
	assert.Equal(t, 3, rows[1].Input.OpenAcc)
}

func TestReadBorrowers_ReorderedAndExtraColumns(t *testing.T) {
	data := createTestXLSX(t, [][]string{
		{"Name", "revol_util", " DTI ", "open_acc", "credit_age", "annual_inc", "loan_amnt"},
		{"Asha", "45.3", "35.5", "8", "5.2", "1800000", "500000"},
	})

	rows, err := ReadBorrowers(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 500000.0, rows[0].Input.LoanAmnt)
	assert.Equal(t, 35.5, rows[0].Input.DTI)
	assert.Equal(t, 45.3, rows[0].Input.RevolUtil)
	assert.Empty(t, rows[0].Input.FullName, "profile columns are not read")
}

func TestReadBorrowers_MissingColumns(t *testing.T) {
	data := createTestXLSX(t, [][]string{
		{"loan_amnt", "annual_inc", "open_acc", "credit_age"},
		{"1", "2", "3", "4"},
	})

	_, err := ReadBorrowers(data)
	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"dti", "revol_util"}, missing.Columns)
	assert.Equal(t, "Missing required columns: dti, revol_util", err.Error())
}

func TestReadBorrowers_BadCell(t *testing.T) {
	data := createTestXLSX(t, [][]string{
		header,
		{"500000", "1800000", "35.5", "8", "5.2", "45.3"},
		{"500000", "lots", "35.5", "8", "5.2", "45.3"},
	})

	_, err := ReadBorrowers(data)
	var cellErr *CellError
	require.ErrorAs(t, err, &cellErr)
	assert.Equal(t, 2, cellErr.Row)
	assert.Equal(t, "annual_inc", cellErr.Column)
	assert.Equal(t, "lots", cellErr.Value)
}

func TestReadBorrowers_NonFinite(t *testing.T) {
	for _, v := range []string{"inf", "-Inf", "NaN", "+infinity"} {
		t.Run(v, func(t *testing.T) {
			data := createTestXLSX(t, [][]string{
				header,
				{"500000", "1800000", "35.5", "8", v, "45.3"},
			})

			_, err := ReadBorrowers(data)
			var cellErr *CellError
			require.ErrorAs(t, err, &cellErr)
			assert.Equal(t, 1, cellErr.Row)
			assert.Equal(t, "credit_age", cellErr.Column)
			assert.Equal(t, v, cellErr.Value)
		})
	}
}

func TestReadBorrowers_FractionalOpenAccounts(t *testing.T) {
	data := createTestXLSX(t, [][]string{
		header,
		{"500000", "1800000", "35.5", "8.5", "5.2", "45.3"},
	})

	_, err := ReadBorrowers(data)
	var cellErr *CellError
	require.ErrorAs(t, err, &cellErr)
	assert.Equal(t, "open_acc", cellErr.Column)
}

func TestReadBorrowers_SkipsBlankRows(t *testing.T) {
	data := createTestXLSX(t, [][]string{
		header,
		{"500000", "1800000", "35.5", "8", "5.2", "45.3"},
		{"", "", "", "", "", ""},
		{"20000", "60000", "12", "3", "2", "80"},
	})

	rows, err := ReadBorrowers(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 3, rows[1].Number)
}

func TestReadBorrowers_HeaderOnly(t *testing.T) {
	rows, err := ReadBorrowers(createTestXLSX(t, [][]string{header}))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadBorrowers_NotXLSX(t *testing.T) {
	_, err := ReadBorrowers([]byte("loan_amnt,annual_inc\n1,2\n"))
	assert.Error(t, err)
}

func TestWriteResults(t *testing.T) {
	results := []models.BatchPrediction{
		{RowNumber: 1, Probability: 0.1235, RiskLevel: "Low", Recommendation: "Standard Reminder",
			LoanAmnt: 500000, AnnualInc: 1800000, DTI: 35.5, OpenAcc: 8, CreditAge: 5.2, RevolUtil: 45.3},
		{RowNumber: 2, Probability: 0.75, RiskLevel: "High", Recommendation: "Priority Collection",
			LoanAmnt: 20000, AnnualInc: 60000, DTI: 12, OpenAcc: 3, CreditAge: 2, RevolUtil: 80},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, results))

	f, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	sheet, ok := f.Sheet[SheetName]
	require.True(t, ok)
	require.Len(t, sheet.Rows, 3)

	var got []string
	for _, c := range sheet.Rows[0].Cells {
		got = append(got, c.String())
	}
	assert.Equal(t, ResultColumns, got)

	row := sheet.Rows[2].Cells
	assert.Equal(t, "2", row[0].String())
	p, err := row[1].Float()
	require.NoError(t, err)
	assert.Equal(t, 0.75, p)
	assert.Equal(t, "High", row[2].String())
	assert.Equal(t, "Priority Collection", row[3].String())
}

func TestWriteResults_ReadBackAsBorrowers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, []models.BatchPrediction{
		{RowNumber: 1, Probability: 0.2, RiskLevel: "Low", Recommendation: "Standard Reminder",
			LoanAmnt: 500000, AnnualInc: 1800000, DTI: 35.5, OpenAcc: 8, CreditAge: 5.2, RevolUtil: 45.3},
	}))

	rows, err := ReadBorrowers(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1800000.0, rows[0].Input.AnnualInc)
	assert.Equal(t, 8, rows[0].Input.OpenAcc)
}
