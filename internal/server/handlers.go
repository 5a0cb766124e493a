package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bsantoso/asset-ledger/internal/export"
	"github.com/bsantoso/asset-ledger/internal/ledger"
)

// corsError writes an error response with CORS headers set
func corsError(w http.ResponseWriter, message string, code int) {
	setCORSHeaders(w)
	http.Error(w, message, code)
}

// setCORSHeaders sets CORS headers on a response
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	w.Header().Set("Access-Control-Max-Age", "3600")
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, code int, message string) {
	setCORSHeaders(w)
	writeJSON(w, code, map[string]string{"error": message})
}

// handleUploadDocument accepts a receipt image/PDF, runs extraction, and
// stages the resulting records.
func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	// 50MB cap to handle high-resolution phone photos
	maxFormSize := int64(50 << 20)
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		slog.Error("Error parsing multipart form", "error", err)
		errorMsg := "Error parsing form"
		if err.Error() == "http: request body too large" {
			errorMsg = "File is too large. Maximum size is 50MB. Please compress or resize your image."
		}
		writeJSONError(w, http.StatusBadRequest, errorMsg)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		slog.Error("Error getting file from form", "error", err)
		writeJSONError(w, http.StatusBadRequest, "No file was selected. Please choose a file to upload.")
		return
	}
	defer f.Close()

	if header.Size > maxFormSize {
		writeJSONError(w, http.StatusBadRequest, "File is too large. Maximum size is 50MB.")
		return
	}

	data, err := io.ReadAll(f)
	if err != nil {
		slog.Error("Error reading file data", "error", err, "filename", header.Filename)
		writeJSONError(w, http.StatusInternalServerError, "Error reading file. Please try again.")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = contentTypeFromExt(header.Filename)
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))

	result, err := s.service.ProcessDocument(header.Filename, data, contentType)
	if err != nil {
		slog.Error("Error processing document", "filename", header.Filename, "error", err)
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	setCORSHeaders(w)
	writeJSON(w, http.StatusCreated, result)
}

// contentTypeFromExt guesses a MIME type for clients that omit one.
func contentTypeFromExt(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".pdf":
		return "application/pdf"
	case ".heic":
		return "image/heic"
	case ".heif":
		return "image/heif"
	default:
		return "application/octet-stream"
	}
}

// entryRequest is the manual-entry payload. The date comes as YYYY-MM-DD;
// quantity and unit price accept JSON numbers or numeric strings.
type entryRequest struct {
	PurchaseDate string          `json:"purchase_date"`
	ItemName     string          `json:"item_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Vendor       string          `json:"vendor"`
}

// handleCreateEntry validates and stages one manually keyed entry.
// Violations reject the whole submission and come back as a list so the user
// can fix the form in one pass.
func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		corsError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var date time.Time
	if req.PurchaseDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "purchase_date must be in YYYY-MM-DD format")
			return
		}
		date = parsed
	}

	violations := s.service.AddManualEntry(ledger.Entry{
		PurchaseDate: date,
		ItemName:     req.ItemName,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		UnitPrice:    req.UnitPrice,
		Vendor:       req.Vendor,
	})
	if len(violations) > 0 {
		setCORSHeaders(w)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"violations": violations})
		return
	}

	setCORSHeaders(w)
	w.WriteHeader(http.StatusCreated)
}

// handleStaging returns the staged batch
func (s *Server) handleStaging(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Staging())
}

// handleResetStaging discards the staged batch
func (s *Server) handleResetStaging(w http.ResponseWriter, r *http.Request) {
	s.service.ResetStaging()
	w.WriteHeader(http.StatusNoContent)
}

// handleCommitted returns the committed ledger
func (s *Server) handleCommitted(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Committed())
}

// handleCommit merges staging into the committed ledger
func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Commit(); err != nil {
		slog.Error("Error committing staged batch", "error", err)
		corsError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, s.service.Committed())
}

// handleArmReset acknowledges the destructive-reset confirmation
func (s *Server) handleArmReset(w http.ResponseWriter, r *http.Request) {
	s.service.ArmCommittedReset()
	w.WriteHeader(http.StatusNoContent)
}

// handleResetCommitted wipes the committed ledger. Without a prior arm call
// this is a guaranteed no-op and the client is told so.
func (s *Server) handleResetCommitted(w http.ResponseWriter, r *http.Request) {
	wiped, err := s.service.ResetCommitted()
	if err != nil {
		slog.Error("Error resetting committed ledger", "error", err)
		corsError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if !wiped {
		writeJSONError(w, http.StatusConflict, "reset not armed: confirm first via /api/ledger/reset/arm")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSummary returns the report aggregates over the committed ledger
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Summary())
}

// handleExportCSV downloads the committed ledger as CSV
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="asset_data.csv"`)
	if err := export.WriteCSV(w, s.service.Schema(), s.service.Committed()); err != nil {
		slog.Error("Error exporting CSV", "error", err)
	}
}

// handleExportXLSX downloads the committed ledger as an Excel workbook
func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="asset_data.xlsx"`)
	if err := export.WriteXLSX(w, s.service.Schema(), s.service.Committed()); err != nil {
		slog.Error("Error exporting XLSX", "error", err)
	}
}
