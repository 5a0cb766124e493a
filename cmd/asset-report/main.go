// asset-report prints the committed ledger aggregates from a database file
// and optionally writes a CSV or Excel export, without starting the server.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/shopspring/decimal"

	"github.com/bsantoso/asset-ledger/internal/export"
	"github.com/bsantoso/asset-ledger/internal/ledger"
)

func main() {
	fs := ff.NewFlagSet("asset-report")
	var (
		dbPath     = fs.StringLong("db", "asset-ledger.db", "Database file path")
		schemaName = fs.StringLong("schema", "seven-column", "Ledger schema: 'five-column' or 'seven-column'")
		csvPath    = fs.StringLong("csv", "", "Write the ledger as CSV to this path")
		xlsxPath   = fs.StringLong("xlsx", "", "Write the ledger as an Excel workbook to this path")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("ASSET_LEDGER"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var schema ledger.Schema
	switch *schemaName {
	case "five-column":
		schema = ledger.FiveColumn
	case "seven-column":
		schema = ledger.SevenColumn
	default:
		slog.Error("Invalid schema", "schema", *schemaName, "valid", "five-column or seven-column")
		os.Exit(1)
	}

	db, err := ledger.NewBoltDB(*dbPath)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	records, err := db.LoadCommitted()
	if err != nil {
		slog.Error("Failed to load ledger", "error", err)
		os.Exit(1)
	}

	summary := ledger.Summarize(records)

	fmt.Printf("Records:     %d\n", len(records))
	fmt.Printf("Grand total: %s\n", summary.GrandTotal.String())
	printGroup("By vendor", summary.ByVendor)
	printGroup("By unit", summary.ByUnit)

	if *csvPath != "" {
		if err := writeFile(*csvPath, func(f *os.File) error {
			return export.WriteCSV(f, schema, records)
		}); err != nil {
			slog.Error("Failed to write CSV", "path", *csvPath, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *csvPath)
	}

	if *xlsxPath != "" {
		if err := writeFile(*xlsxPath, func(f *os.File) error {
			return export.WriteXLSX(f, schema, records)
		}); err != nil {
			slog.Error("Failed to write workbook", "path", *xlsxPath, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *xlsxPath)
	}
}

func printGroup(title string, group map[string]decimal.Decimal) {
	if len(group) == 0 {
		return
	}

	keys := make([]string, 0, len(group))
	for key := range group {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Printf("%s:\n", title)
	for _, key := range keys {
		fmt.Printf("  %-24s %s\n", key, group[key].String())
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
