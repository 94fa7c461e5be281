package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/careersight/careersight/internal/db"
)

// requireDB guards persistence endpoints. Returns false after writing a 503
// when the server runs without a database.
func (s *Server) requireDB(w http.ResponseWriter) bool {
	if s.db == nil {
		respondError(w, http.StatusServiceUnavailable, "persistence unavailable")
		return false
	}
	return true
}

// pathUUID parses the {id} path segment as a UUID. Returns uuid.Nil and
// writes a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id, expected UUID")
		return uuid.Nil, false
	}
	return id, true
}

// --- user profiles ---

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, ok := pathUUID(w, r)
	if !ok {
		return
	}

	profile, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		respondError(w, http.StatusNotFound, "profile not found")
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

type profileRequest struct {
	Skills          string   `json:"skills" validate:"required"`
	Summary         string   `json:"summary"`
	DesiredRole     string   `json:"desired_role"`
	Locations       []string `json:"locations"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,gte=0,lte=60"`
	SalaryMin       *float64 `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax       *float64 `json:"salary_max" validate:"omitempty,gte=0"`
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, ok := pathUUID(w, r)
	if !ok {
		return
	}

	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	saved, err := s.db.UpsertProfile(r.Context(), &db.StoredProfile{
		UserID:          userID,
		Skills:          req.Skills,
		Summary:         req.Summary,
		DesiredRole:     req.DesiredRole,
		Locations:       req.Locations,
		ExperienceYears: req.ExperienceYears,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteProfile(r.Context(), userID); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- applications ---

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, ok := pathUUID(w, r)
	if !ok {
		return
	}

	apps, err := s.db.ListApplications(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if apps == nil {
		apps = []db.Application{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"applications": apps, "total": len(apps)})
}

type applicationRequest struct {
	PostingID int    `json:"posting_id" validate:"gte=0"`
	JobTitle  string `json:"job_title" validate:"required"`
	Company   string `json:"company"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, ok := pathUUID(w, r)
	if !ok {
		return
	}

	var req applicationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}
	if req.Status == "" {
		req.Status = db.StatusApplied
	}
	if !db.ValidStatus(req.Status) {
		respondError(w, http.StatusBadRequest, "unknown application status")
		return
	}

	saved, err := s.db.CreateApplication(r.Context(), &db.Application{
		UserID:    userID,
		PostingID: req.PostingID,
		JobTitle:  req.JobTitle,
		Company:   req.Company,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

type applicationUpdateRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

func (s *Server) handleUpdateApplication(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	var req applicationUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}
	if !db.ValidStatus(req.Status) {
		respondError(w, http.StatusBadRequest, "unknown application status")
		return
	}

	updated, err := s.db.UpdateApplicationStatus(r.Context(), id, req.Status, req.Notes)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "application not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteApplication(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- saved searches ---

func (s *Server) handleListSavedSearches(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, ok := pathUUID(w, r)
	if !ok {
		return
	}

	searches, err := s.db.ListSavedSearches(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if searches == nil {
		searches = []db.SavedSearch{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"searches": searches, "total": len(searches)})
}

type savedSearchRequest struct {
	Name            string   `json:"name" validate:"required"`
	Query           string   `json:"query" validate:"required"`
	Location        string   `json:"location"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,gte=0,lte=60"`
	SalaryMin       *float64 `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax       *float64 `json:"salary_max" validate:"omitempty,gte=0"`
}

func (s *Server) handleCreateSavedSearch(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, ok := pathUUID(w, r)
	if !ok {
		return
	}

	var req savedSearchRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	saved, err := s.db.CreateSavedSearch(r.Context(), &db.SavedSearch{
		UserID:          userID,
		Name:            req.Name,
		Query:           req.Query,
		Location:        req.Location,
		ExperienceYears: req.ExperienceYears,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleDeleteSavedSearch(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteSavedSearch(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- notification preferences ---

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, ok := pathUUID(w, r)
	if !ok {
		return
	}

	prefs, err := s.db.GetPreferences(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if prefs == nil {
		respondError(w, http.StatusNotFound, "preferences not found")
		return
	}
	respondJSON(w, http.StatusOK, prefs)
}

type preferencesRequest struct {
	EmailMatches bool   `json:"email_matches"`
	EmailDigest  bool   `json:"email_digest"`
	DigestDay    string `json:"digest_day" validate:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, ok := pathUUID(w, r)
	if !ok {
		return
	}

	var req preferencesRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	saved, err := s.db.UpsertPreferences(r.Context(), &db.Preferences{
		UserID:       userID,
		EmailMatches: req.EmailMatches,
		EmailDigest:  req.EmailDigest,
		DigestDay:    req.DigestDay,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeletePreferences(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	userID, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeletePreferences(r.Context(), userID); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
