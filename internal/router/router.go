package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"onboardly/internal/handlers"
	"onboardly/internal/middleware"
)

func RegisterRouter(api *handlers.API) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.LoggingMiddleware)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	// Document validation (public: candidates upload their own documents)
	r.Post("/api/v1/validate-document", api.ValidateDocument)

	// Checklist state and printable QR link
	r.Get("/api/v1/checklist/{employee}", api.GetChecklist)
	r.Get("/api/v1/checklist/{employee}/qrcode", api.GetChecklistQRCode)

	// Issue-explanation assistant
	r.Post("/api/v1/chat", api.Chat)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)
		r.Post("/api/v1/escalations", api.CreateEscalation)
		r.Get("/api/v1/escalations", api.ListEscalations)
		// Bulk CSV upload of reference license records for HR admins
		r.Post("/api/v1/registry/bulk-upload", api.BulkUploadRegistry)
	})
	return r
}
