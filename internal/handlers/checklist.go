package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"onboardly/internal/checklist"
)

// GetChecklist: GET /api/v1/checklist/{employee}
func (a *API) GetChecklist(w http.ResponseWriter, r *http.Request) {
	employee := chi.URLParam(r, "employee")
	if employee == "" {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "employee is required"})
		return
	}

	cl, err := a.State.Load(r.Context(), employee)
	if err != nil {
		zap.L().Error("load checklist failed", zap.String("employee", employee), zap.Error(err))
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"status": "Server_Error", "message": "failed to load checklist state"})
		return
	}

	writeJSONResp(w, http.StatusOK, map[string]any{
		"employee":  employee,
		"checklist": cl,
		"progress":  checklist.Progress(cl),
	})
}

// GetChecklistQRCode: GET /api/v1/checklist/{employee}/qrcode
// Returns a PNG pointing at the employee's checklist page, for printing on
// onboarding paperwork.
func (a *API) GetChecklistQRCode(w http.ResponseWriter, r *http.Request) {
	employee := chi.URLParam(r, "employee")
	if employee == "" {
		http.Error(w, "employee is required", http.StatusBadRequest)
		return
	}

	base := a.BaseURL
	if base == "" {
		base = "http://localhost:8080"
	}
	data := base + "/api/v1/checklist/" + employee

	png, err := qrcode.Encode(data, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
