package extraction

import "fmt"

// Format describes the row shape an extractor is asked to produce: the
// single-quoted, comma-separated column layout of one schema variant.
type Format struct {
	Name    string
	Header  string
	Example string
	// ColumnRules are the per-column formatting instructions.
	ColumnRules string
}

// FiveColumnFormat matches ledger.FiveColumn.
var FiveColumnFormat = Format{
	Name:    "five-column",
	Header:  `'Purchase Date','Item Name','Quantity','Unit Price','Total Price'`,
	Example: `'2023-10-15','Oreo Vanilla','38','2000','76000'`,
	ColumnRules: `- Purchase Date: YYYY-MM-DD format
- Item Name: full name, strip special characters
- Quantity: a positive decimal number (convert fractions such as 1/2 to 0.5)
- Unit Price: a plain number, no currency symbols
- Total Price: Quantity multiplied by Unit Price, or the printed total if present`,
}

// SevenColumnFormat matches ledger.SevenColumn.
var SevenColumnFormat = Format{
	Name:    "seven-column",
	Header:  `'Purchase Date','Item Name','Quantity','Unit','Unit Price','Total Price','Vendor'`,
	Example: `'2023-10-15','Portland Cement','1.5','kg','50000','75000','Building Supply Co'`,
	ColumnRules: `- Purchase Date: YYYY-MM-DD format
- Item Name: full name, strip special characters
- Quantity: a positive decimal number (convert fractions such as 1/2 to 0.5)
- Unit: the unit printed on the receipt (pcs, kg, meter, pack, ...), or N/A when absent
- Unit Price: a plain number, no currency symbols
- Total Price: Quantity multiplied by Unit Price, or the printed total if present
- Vendor: the store name on the receipt`,
}

// ocrPrompt asks the model to transcribe the document before the structured
// pass. Two stages read noticeably better than one on low-quality photos.
const ocrPrompt = `Extract the detailed information from this receipt or purchase document with high precision.

Guidelines:
1. Identify every line item clearly
2. Pay attention to number and date formats
3. Keep fractions as printed

Information that MUST be extracted for every line item:
- Transaction date
- Product/item name (full name)
- Unit price (numeric)
- Quantity (number or fraction)
- Unit of measure if printed (pcs, kg, meter, pack, ...)
- Total price
- Vendor (store name), if printed

Important:
- Use clean numeric formats
- Strip currency symbols
- Write N/A for anything you cannot find
- Prioritize accuracy over completeness`

// AnalysisPrompt builds the second-stage prompt that converts transcribed
// text into strict delimited rows of this format.
func (f Format) AnalysisPrompt(text string) string {
	return fmt.Sprintf(`Detailed data extraction instructions.

Source text:
%s

Guidelines:
1. Extract the data as strict CSV
2. Every column has specific criteria
3. Convert fractions to decimals

EXACT output format, one line per item:
%s

Strict rules:
- Use single quotes around every field
- Separate fields with EXACTLY one comma
%s

Valid example:
%s

Final instructions:
- Return ONLY the CSV rows
- Do not add explanations, comments, or markdown fences
- If several fields are N/A, still include the row
- Prioritize precision and consistency`, text, f.Header, f.ColumnRules, f.Example)
}

// VisionPrompt builds a single-shot prompt for backends where two round
// trips are too slow, asking for the delimited rows straight off the image.
func (f Format) VisionPrompt() string {
	return fmt.Sprintf(`Read all text in this receipt or purchase document and extract every line item.

EXACT output format, one line per item:
%s

Strict rules:
- Use single quotes around every field
- Separate fields with EXACTLY one comma
%s

Valid example:
%s

Return ONLY the CSV rows. Do not add explanations, comments, or markdown fences. Write N/A for anything you cannot find.`, f.Header, f.ColumnRules, f.Example)
}
