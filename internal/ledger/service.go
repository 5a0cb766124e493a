package ledger

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/bsantoso/asset-ledger/internal/extraction"
)

// IDGenerator generates unique IDs for archived documents
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

type defaultIDGenerator struct{}

func (g *defaultIDGenerator) Generate() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// BatchResult reports the outcome of processing one uploaded document.
type BatchResult struct {
	Records    []Record `json:"records"`
	Rejected   int      `json:"rejected"`
	SourceFile string   `json:"source_file"`
}

// Service drives the parse-validate-append cycle for one ledger session. One
// user interaction runs to completion before the next is accepted; the only
// slow step is the extractor call.
type Service struct {
	store       *Store
	db          DB
	extractor   extraction.Extractor
	storage     Storage
	builder     *Builder
	idGenerator IDGenerator
	timeSource  TimeSource
}

// NewService wires the service and restores the committed ledger from the
// database so a restarted process resumes its previous session.
func NewService(store *Store, db DB, extractor extraction.Extractor, storage Storage) (*Service, error) {
	s := &Service{
		store:       store,
		db:          db,
		extractor:   extractor,
		storage:     storage,
		builder:     NewBuilder(store.Schema()),
		idGenerator: &defaultIDGenerator{},
		timeSource:  &defaultTimeSource{},
	}

	restored, err := db.LoadCommitted()
	if err != nil {
		return nil, fmt.Errorf("restoring committed ledger: %w", err)
	}
	store.RestoreCommitted(restored)
	if len(restored) > 0 {
		slog.Info("Restored committed ledger", "records", len(restored))
	}

	return s, nil
}

// NewServiceWithDeps wires the service with custom ID and time sources for testing.
func NewServiceWithDeps(store *Store, db DB, extractor extraction.Extractor, storage Storage, idGen IDGenerator, timeSrc TimeSource) (*Service, error) {
	s, err := NewService(store, db, extractor, storage)
	if err != nil {
		return nil, err
	}
	s.idGenerator = idGen
	s.timeSource = timeSrc
	return s, nil
}

// Schema returns the session's schema variant.
func (s *Service) Schema() Schema {
	return s.store.Schema()
}

// sanitizeFilename cleans up phone-generated filenames before archiving
func sanitizeFilename(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	base = regexp.MustCompile(`[^a-zA-Z0-9\s\-_]`).ReplaceAllString(base, "")
	base = regexp.MustCompile(`\s+`).ReplaceAllString(base, " ")
	base = strings.TrimSpace(base)

	if len(base) > 50 {
		base = base[:50]
	}
	if base == "" {
		base = "document"
	}

	return base + ext
}

// ProcessDocument archives an uploaded receipt image, runs it through the
// extractor, and appends the surviving records to staging. Extraction is
// fail-fast: one attempt, no retry. Malformed rows degrade to a smaller
// batch, never an error.
func (s *Service) ProcessDocument(filename string, data []byte, contentType string) (*BatchResult, error) {
	id := s.idGenerator.Generate()
	savedPath, err := s.storage.Save(fmt.Sprintf("%s_%s", id, sanitizeFilename(filename)), data)
	if err != nil {
		return nil, fmt.Errorf("archiving document: %w", err)
	}

	raw, err := s.extractor.ExtractRows(data, contentType)
	if err != nil {
		slog.Error("Failed to extract document",
			"filename", filename,
			"content_type", contentType,
			"file_size", len(data),
			"error", err,
		)
		// Drop the archived copy since nothing came of it
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("extracting document: %w", err)
	}

	built := s.builder.Build(raw)
	s.store.AppendToStaging(built.Records)

	slog.Info("Document processed",
		"filename", filename,
		"records", len(built.Records),
		"rejected", built.Rejected,
	)

	return &BatchResult{
		Records:    built.Records,
		Rejected:   built.Rejected,
		SourceFile: savedPath,
	}, nil
}

// AddManualEntry validates a manually keyed entry and, if it passes, appends
// it to staging. Violations reject the whole submission and are returned for
// the caller to display; the ledger is untouched.
func (s *Service) AddManualEntry(entry Entry) []string {
	violations := ValidateEntry(entry, s.store.Schema())
	if len(violations) > 0 {
		return violations
	}

	date := entry.PurchaseDate
	if date.IsZero() {
		date = s.timeSource.Now()
	}
	unit := strings.TrimSpace(entry.Unit)
	if unit == "" {
		unit = UnknownSentinel
	}

	record := Record{
		PurchaseDate: date,
		ItemName:     cleanItemName(entry.ItemName),
		Quantity:     entry.Quantity,
		Unit:         unit,
		UnitPrice:    entry.UnitPrice,
		TotalPrice:   entry.Quantity.Mul(entry.UnitPrice),
		Vendor:       strings.TrimSpace(entry.Vendor),
	}

	s.store.AppendToStaging([]Record{record})
	return nil
}

// Staging returns the staged batch.
func (s *Service) Staging() []Record {
	return s.store.Staging()
}

// Committed returns the committed ledger.
func (s *Service) Committed() []Record {
	return s.store.Committed()
}

// ResetStaging discards the staged batch.
func (s *Service) ResetStaging() {
	s.store.ResetStaging()
}

// Commit merges staging into the committed ledger and mirrors the batch to
// the database.
func (s *Service) Commit() error {
	moved := s.store.Commit()
	if len(moved) == 0 {
		return nil
	}
	if err := s.db.AppendCommitted(moved); err != nil {
		// The in-memory ledger stays consistent; only the mirror is behind.
		slog.Error("Failed to persist committed batch", "records", len(moved), "error", err)
		return fmt.Errorf("persisting committed batch: %w", err)
	}
	slog.Info("Committed batch", "records", len(moved))
	return nil
}

// ArmCommittedReset acknowledges the destructive-reset confirmation.
func (s *Service) ArmCommittedReset() {
	s.store.ArmCommittedReset()
}

// ResetCommitted wipes the committed ledger and its database mirror, but only
// if a confirmation was armed first. Returns whether the wipe happened.
func (s *Service) ResetCommitted() (bool, error) {
	if !s.store.ResetCommitted() {
		return false, nil
	}
	if err := s.db.ResetCommitted(); err != nil {
		return true, fmt.Errorf("wiping persisted ledger: %w", err)
	}
	slog.Info("Committed ledger reset")
	return true, nil
}

// Summary aggregates the committed ledger for reporting.
func (s *Service) Summary() Summary {
	return Summarize(s.store.Committed())
}
