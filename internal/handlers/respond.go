package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"onboardly/internal/checklist"
	"onboardly/internal/hr"
	"onboardly/internal/models"
	"onboardly/internal/reconcile"
)

// ExtractFunc turns an uploaded document image into a structured report.
// Injected so handler tests can run without the model.
type ExtractFunc func(ctx context.Context, image []byte, mimeType string) (models.DocumentReport, error)

// ChatService answers candidate questions about detected validation issues.
type ChatService interface {
	Respond(ctx context.Context, issueCodes []string, useTemplate bool) (string, error)
}

// API bundles the dependencies of the HTTP handlers.
type API struct {
	Store     *reconcile.Store
	State     checklist.Store
	Assistant ChatService
	HRLog     *hr.Log
	Extract   ExtractFunc
	UploadDir string
	BaseURL   string
}

func writeJSONResp(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
