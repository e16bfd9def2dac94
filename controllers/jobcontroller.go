package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/zarkopopovski/registrar-chat/storage"
)

// JobController serves the comparison worker: it hands out pending jobs and
// takes the alternate provider's answers back, back-filling them onto the
// bot message each job references.
type JobController struct {
	Storage        storage.Storage
	AuthController *AuthController
}

func (jobController *JobController) PendingJobs(w http.ResponseWriter, r *http.Request) {
	if err := jobController.AuthController.TokenValid(r); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(Exception{Message: "Unauthorized"})
		return
	}

	jobs, err := jobController.Storage.PendingJobs()
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch pending jobs")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch pending jobs"})
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

func (jobController *JobController) SubmitJobResponse(w http.ResponseWriter, r *http.Request) {
	if err := jobController.AuthController.TokenValid(r); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(Exception{Message: "Unauthorized"})
		return
	}

	jobID := r.PathValue("jobID")

	b, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var payload struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(b, &payload); err != nil || payload.Response == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Response is required and must be a string"})
		return
	}

	if err := jobController.Storage.CompleteJob(jobID, payload.Response); err != nil {
		log.Error().Err(err).Str("job_id", jobID).Msg("failed to complete job")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update job response"})
		return
	}

	// Back-propagate onto the referenced bot message. A job deleted or
	// never created degrades to a no-op.
	job, err := jobController.Storage.GetJob(jobID)
	if err != nil {
		log.Error().Err(err).Str("job_id", jobID).Msg("failed to look up job")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update job response"})
		return
	}
	if job != nil {
		if err := jobController.Storage.SetComparisonResponse(job.MessageID, payload.Response); err != nil {
			log.Error().Err(err).Str("message_id", job.MessageID).Msg("failed to set comparison response")
		}
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
