package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type chatRequest struct {
	IssueCodes  []string `json:"issue_codes"`
	UseTemplate bool     `json:"use_template"`
}

// Chat: POST /api/v1/chat
// Explains the given validation issue codes to the candidate. Pending issues
// arrive with the request; the server holds no conversation state.
func (a *API) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "invalid JSON body"})
		return
	}

	reply, err := a.Assistant.Respond(r.Context(), req.IssueCodes, req.UseTemplate)
	if err != nil {
		zap.L().Error("chat response failed", zap.Error(err))
		writeJSONResp(w, http.StatusBadGateway, map[string]any{"status": "Upstream_Error", "message": err.Error()})
		return
	}

	writeJSONResp(w, http.StatusOK, map[string]any{
		"reply":       reply,
		"issue_codes": req.IssueCodes,
	})
}
