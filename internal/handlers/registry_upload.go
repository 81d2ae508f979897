package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"onboardly/internal/db"
	"onboardly/internal/models"
)

var registryCSVHeaders = []string{"full_name", "date_of_birth", "license_number", "gender", "valid_until", "field_of_practice"}

// BulkUploadRegistry handles CSV bulk upload of reference license records by
// an authenticated HR admin. New rows are served by the matcher after the
// next restart; the in-memory store is fixed at load time.
func (a *API) BulkUploadRegistry(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := r.ParseMultipartForm(50 << 20); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	// Tolerant file field lookup: prefer "recordsCsv", fall back to the first
	// available file field.
	var file multipart.File
	var header *multipart.FileHeader
	var err error

	file, header, err = r.FormFile("recordsCsv")
	if err != nil {
		available := []string{}
		if r.MultipartForm != nil && r.MultipartForm.File != nil {
			for k := range r.MultipartForm.File {
				available = append(available, k)
			}
		}
		alts := []string{"records", "csv", "file", "upload", "records_file"}
		for _, alt := range alts {
			if f2, h2, err2 := r.FormFile(alt); err2 == nil {
				file, header, err = f2, h2, nil
				break
			}
		}
		if err != nil && len(available) > 0 {
			if f2, h2, err2 := r.FormFile(available[0]); err2 == nil {
				file, header, err = f2, h2, nil
			}
		}
		if err != nil {
			writeJSONResp(w, http.StatusBadRequest, map[string]any{
				"error":               "recordsCsv file is required",
				"expected_field":      "recordsCsv",
				"available_file_keys": available,
			})
			return
		}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		http.Error(w, "unable to read CSV header", http.StatusBadRequest)
		return
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(strings.ToLower(headers[i]))
	}
	if !equalStringSlices(headers, registryCSVHeaders) {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{
			"error":    "Invalid CSV format. Please use the provided template.",
			"expected": registryCSVHeaders,
			"got":      headers,
		})
		return
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "could not start transaction", http.StatusInternalServerError)
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
		}
	}()

	var count int
	var duplicates int
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			tx.Rollback()
			http.Error(w, "failed to read CSV rows", http.StatusBadRequest)
			return
		}
		if len(rec) != len(registryCSVHeaders) {
			tx.Rollback()
			http.Error(w, "row does not match header length", http.StatusBadRequest)
			return
		}

		row := models.ReferenceLicense{
			FullName:        strings.TrimSpace(rec[0]),
			DateOfBirth:     strings.TrimSpace(rec[1]),
			LicenseNumber:   strings.TrimSpace(rec[2]),
			Gender:          strings.TrimSpace(rec[3]),
			ValidUntil:      strings.TrimSpace(rec[4]),
			FieldOfPractice: strings.TrimSpace(rec[5]),
		}
		if row.LicenseNumber == "" {
			tx.Rollback()
			http.Error(w, "license_number is required for every row", http.StatusBadRequest)
			return
		}

		var dup int64
		if err := tx.Model(&models.ReferenceLicense{}).
			Where("license_number = ?", row.LicenseNumber).
			Count(&dup).Error; err != nil {
			tx.Rollback()
			http.Error(w, "database error during duplicate check", http.StatusInternalServerError)
			return
		}
		if dup > 0 {
			duplicates++
			continue
		}

		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			http.Error(w, "failed to insert row", http.StatusInternalServerError)
			return
		}
		count++
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		http.Error(w, "failed to commit transaction", http.StatusInternalServerError)
		return
	}

	zap.L().Info("registry bulk upload",
		zap.Int("inserted", count),
		zap.Int("duplicates_skipped", duplicates),
		zap.String("file", header.Filename))

	writeJSONResp(w, http.StatusOK, map[string]any{
		"message":            fmt.Sprintf("Successfully imported %d records. Skipped %d duplicates. Records are served after the next restart.", count, duplicates),
		"inserted":           count,
		"duplicates_skipped": duplicates,
		"file":               header.Filename,
	})
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
