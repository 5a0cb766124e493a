// Package export serializes the committed ledger for spreadsheet
// collaborators. Both writers emit the schema's exact column order with no
// further transformation.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/bsantoso/asset-ledger/internal/ledger"
)

const sheetName = "Assets"

// WriteCSV writes the records as a CSV table with a header row.
func WriteCSV(w io.Writer, schema ledger.Schema, records []ledger.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(schema.Headers()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, record := range records {
		if err := cw.Write(record.Row(schema)); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the records as a single-sheet Excel workbook. Numeric
// columns are written as numbers so spreadsheet formulas work on them.
func WriteXLSX(w io.Writer, schema ledger.Schema, records []ledger.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for i, header := range schema.Headers() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for row, record := range records {
		for col, column := range schema.Columns {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, cellValue(record, column)); err != nil {
				return fmt.Errorf("writing row %d: %w", row+1, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// cellValue maps a record column to a typed spreadsheet cell.
func cellValue(record ledger.Record, column ledger.Column) interface{} {
	switch column {
	case ledger.ColumnQuantity:
		return record.Quantity.InexactFloat64()
	case ledger.ColumnUnitPrice:
		return record.UnitPrice.InexactFloat64()
	case ledger.ColumnTotalPrice:
		return record.TotalPrice.InexactFloat64()
	default:
		return record.Value(column)
	}
}
