// Package spreadsheet reads borrower sheets and writes scored results as xlsx.
package spreadsheet

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"CreditPathAI/internal/model"
	"CreditPathAI/internal/models"
)

// SheetName is the sheet written by WriteResults.
const SheetName = "Predictions"

// ResultColumns is the header row of exported results.
var ResultColumns = []string{
	"row_number", "probability", "risk_level", "recommendation",
	"loan_amnt", "annual_inc", "dti", "open_acc", "credit_age", "revol_util",
}

// MissingColumnsError lists required headers absent from the first row.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "Missing required columns: " + strings.Join(e.Columns, ", ")
}

// CellError reports a cell that does not hold a usable number.
type CellError struct {
	Row    int
	Column string
	Value  string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d: %s must be a number, got %q", e.Row, e.Column, e.Value)
}

// Row is one data row; Number counts data rows from 1, excluding the header.
type Row struct {
	Number int
	Input  models.BorrowerInput
}

// ReadBorrowers parses the first sheet of an xlsx file. The first row is the
// header; columns may appear in any order and unknown columns are ignored.
// Rows with every cell blank are skipped.
func ReadBorrowers(data []byte) ([]Row, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("xlsx: workbook has no sheets")
	}
	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 || sheet.Rows[0] == nil {
		return nil, &MissingColumnsError{Columns: append([]string(nil), model.FeatureOrder...)}
	}

	index := map[string]int{}
	for i, cell := range sheet.Rows[0].Cells {
		name := strings.ToLower(strings.TrimSpace(cell.String()))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	var missing []string
	for _, col := range model.FeatureOrder {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var rows []Row
	for i, r := range sheet.Rows[1:] {
		if r == nil || blank(r) {
			continue
		}
		number := i + 1
		values := make(map[string]float64, len(model.FeatureOrder))
		for _, col := range model.FeatureOrder {
			v, err := number64(r, index[col])
			if err != nil {
				return nil, &CellError{Row: number, Column: col, Value: cellText(r, index[col])}
			}
			values[col] = v
		}
		openAcc := values["open_acc"]
		if openAcc != math.Trunc(openAcc) {
			return nil, &CellError{Row: number, Column: "open_acc", Value: cellText(r, index["open_acc"])}
		}
		rows = append(rows, Row{
			Number: number,
			Input: models.BorrowerInput{
				LoanAmnt:  values["loan_amnt"],
				AnnualInc: values["annual_inc"],
				DTI:       values["dti"],
				OpenAcc:   int(openAcc),
				CreditAge: values["credit_age"],
				RevolUtil: values["revol_util"],
			},
		})
	}
	return rows, nil
}

// WriteResults writes scored rows as a single-sheet workbook.
func WriteResults(w io.Writer, results []models.BatchPrediction) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(SheetName)
	if err != nil {
		return eris.Wrap(err, "xlsx: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range ResultColumns {
		header.AddCell().SetString(col)
	}
	for _, r := range results {
		row := sheet.AddRow()
		row.AddCell().SetInt(r.RowNumber)
		row.AddCell().SetFloat(r.Probability)
		row.AddCell().SetString(r.RiskLevel)
		row.AddCell().SetString(r.Recommendation)
		row.AddCell().SetFloat(r.LoanAmnt)
		row.AddCell().SetFloat(r.AnnualInc)
		row.AddCell().SetFloat(r.DTI)
		row.AddCell().SetInt(r.OpenAcc)
		row.AddCell().SetFloat(r.CreditAge)
		row.AddCell().SetFloat(r.RevolUtil)
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "xlsx: write file")
	}
	return nil
}

func blank(r *xlsx.Row) bool {
	for _, c := range r.Cells {
		if strings.TrimSpace(c.String()) != "" {
			return false
		}
	}
	return true
}

func cellText(r *xlsx.Row, i int) string {
	if i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i].String()
}

func number64(r *xlsx.Row, i int) (float64, error) {
	if i >= len(r.Cells) {
		return 0, eris.New("xlsx: empty cell")
	}
	v, err := r.Cells[i].Float()
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, eris.Errorf("xlsx: non-finite value %v", v)
	}
	return v, nil
}
