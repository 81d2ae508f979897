package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type escalationRequest struct {
	EmployeeName     string `json:"employee_name"`
	IssueDescription string `json:"issue_description"`
}

// CreateEscalation: POST /api/v1/escalations (protected)
func (a *API) CreateEscalation(w http.ResponseWriter, r *http.Request) {
	var req escalationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "invalid JSON body"})
		return
	}

	req.EmployeeName = strings.TrimSpace(req.EmployeeName)
	req.IssueDescription = strings.TrimSpace(req.IssueDescription)
	if req.EmployeeName == "" || req.IssueDescription == "" {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "employee_name and issue_description are required"})
		return
	}

	entry, err := a.HRLog.Save(r.Context(), req.EmployeeName, req.IssueDescription)
	if err != nil {
		zap.L().Error("save escalation failed", zap.Error(err))
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"status": "Server_Error", "message": "failed to record escalation"})
		return
	}

	writeJSONResp(w, http.StatusCreated, entry)
}

// ListEscalations: GET /api/v1/escalations (protected)
func (a *API) ListEscalations(w http.ResponseWriter, r *http.Request) {
	entries, err := a.HRLog.List(r.Context())
	if err != nil {
		zap.L().Error("list escalations failed", zap.Error(err))
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"status": "Server_Error", "message": "failed to list escalations"})
		return
	}
	writeJSONResp(w, http.StatusOK, map[string]any{"escalations": entries, "count": len(entries)})
}
