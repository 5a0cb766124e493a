package extraction

// Extractor defines the interface for turning a receipt/document image into
// delimited row text. The output is untrusted: callers must parse it
// defensively.
type Extractor interface {
	// ExtractRows analyzes a document image/PDF and returns the raw
	// delimited rows the model produced.
	ExtractRows(imageData []byte, contentType string) (string, error)
	// Close closes the extractor and releases resources
	Close() error
}
