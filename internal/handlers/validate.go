package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"go.uber.org/zap"

	"onboardly/internal/checklist"
	"onboardly/internal/reconcile"
)

// ValidateDocument: POST /api/v1/validate-document
// multipart/form-data with file field "document" and optional "employee".
func (a *API) ValidateDocument(w http.ResponseWriter, r *http.Request) {
	// Limit body to 10MB
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "failed to parse form or file too large"})
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		// Tolerant lookup: frontends disagree on the field name.
		if r.MultipartForm != nil && r.MultipartForm.File != nil {
			alts := []string{"file", "upload", "image", "scan", "document[]", "files[]"}
			for _, alt := range alts {
				if f2, h2, err2 := r.FormFile(alt); err2 == nil {
					file, header, err = f2, h2, nil
					break
				}
			}
			if err != nil {
				for k := range r.MultipartForm.File {
					if f2, h2, err2 := r.FormFile(k); err2 == nil {
						file, header, err = f2, h2, nil
						break
					}
				}
			}
		}
		if err != nil {
			writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "missing file field 'document' (send multipart/form-data with field name 'document')"})
			return
		}
	}
	defer file.Close()

	imgBytes, err := io.ReadAll(file)
	if err != nil || len(imgBytes) == 0 {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "failed to read uploaded file"})
		return
	}

	employee := strings.TrimSpace(r.FormValue("employee"))
	if employee == "" {
		employee = "default"
	}

	a.saveUpload(header.Filename, imgBytes)

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(imgBytes)
	}

	ctx := r.Context()
	report, err := a.Extract(ctx, imgBytes, mimeType)
	if err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": err.Error()})
		return
	}

	resp := map[string]any{
		"document_type":  report.DocumentType,
		"validation":     report.Validation,
		"extracted_info": report.ExtractedInfo,
		"notes":          report.Notes,
	}

	// Licenses additionally get checked against the reference registry.
	if report.DocumentType == checklist.DocNursingLicense {
		result := reconcile.Match(report.ExtractedInfo, a.Store)
		report.Validation[checklist.DatabaseCheckField] = reconcile.BuildReport(result)
		resp["validation"] = report.Validation
		resp["verdict"] = result.Verdict

		if result.Record != nil {
			// Advisory fuzzy score on the name; never part of the verdict.
			metric := metrics.NewJaroWinkler()
			extracted := report.ExtractedInfo["name"]
			if extracted == "" {
				extracted = report.ExtractedInfo["full_name"]
			}
			resp["match_confidence"] = strutil.Similarity(
				strings.ToLower(strings.TrimSpace(extracted)),
				strings.ToLower(strings.TrimSpace(result.Record.FullName)),
				metric,
			)
		}
	}

	cl, err := a.State.Load(ctx, employee)
	if err != nil {
		zap.L().Error("load checklist failed", zap.String("employee", employee), zap.Error(err))
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"status": "Server_Error", "message": "failed to load checklist state"})
		return
	}
	cl = checklist.Update(cl, report.DocumentType, report.Validation, report.Notes)
	if err := a.State.Save(ctx, employee, cl); err != nil {
		zap.L().Error("save checklist failed", zap.String("employee", employee), zap.Error(err))
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"status": "Server_Error", "message": "failed to save checklist state"})
		return
	}

	resp["checklist"] = cl
	resp["progress"] = checklist.Progress(cl)

	writeJSONResp(w, http.StatusOK, resp)
}

// saveUpload archives the original scan for audit; failures are logged, not
// fatal to the validation attempt.
func (a *API) saveUpload(filename string, data []byte) {
	if a.UploadDir == "" {
		return
	}
	if err := os.MkdirAll(a.UploadDir, 0o755); err != nil {
		zap.L().Warn("create upload dir failed", zap.Error(err))
		return
	}
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload"
	}
	path := filepath.Join(a.UploadDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		zap.L().Warn("archive upload failed", zap.String("path", path), zap.Error(err))
	}
}
