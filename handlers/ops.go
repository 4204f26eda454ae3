package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"guildbot/services"
)

// OpsHTTPHandler serves the read-only operational endpoints: health and the
// open-application listing per server.
type OpsHTTPHandler struct {
	serversService    services.ServersService
	applicantsService services.ApplicantsService
}

func NewOpsHTTPHandler(
	serversService services.ServersService,
	applicantsService services.ApplicantsService,
) *OpsHTTPHandler {
	return &OpsHTTPHandler{
		serversService:    serversService,
		applicantsService: applicantsService,
	}
}

func (h *OpsHTTPHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *OpsHTTPHandler) HandleListApplications(w http.ResponseWriter, r *http.Request) {
	serverID := mux.Vars(r)["serverID"]
	log.Printf("📋 Listing open applications for server: %s", serverID)

	maybeServer, err := h.serversService.GetServerByID(r.Context(), serverID)
	if err != nil {
		log.Printf("❌ Failed to look up server %s: %v", serverID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if !maybeServer.IsPresent() {
		http.Error(w, "server not found", http.StatusNotFound)
		return
	}

	applications, err := h.applicantsService.GetApplicationsByServer(r.Context(), serverID)
	if err != nil {
		log.Printf("❌ Failed to list applications for server %s: %v", serverID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, applications)
}

func (h *OpsHTTPHandler) writeJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}
