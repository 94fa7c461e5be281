package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/careersight/careersight/internal/ingestion"
	"github.com/careersight/careersight/internal/insights"
	"github.com/careersight/careersight/internal/ranking"
	"github.com/careersight/careersight/internal/skills"
	"github.com/careersight/careersight/internal/types"
)

// handleHealth reports server and collaborator status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	database := "disabled"
	if s.db != nil {
		database = "connected"
		if err := s.db.Ping(r.Context()); err != nil {
			database = "unreachable"
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"postings":       s.store.Count(),
		"corpus_version": s.store.Version(),
		"database":       database,
	})
}

type recommendRequest struct {
	Skills          string   `json:"skills" validate:"required"`
	Summary         string   `json:"summary"`
	DesiredRole     string   `json:"desired_role"`
	Locations       []string `json:"locations"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,gte=0,lte=60"`
	SalaryMin       *float64 `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax       *float64 `json:"salary_max" validate:"omitempty,gte=0"`

	// Result filters
	Location string `json:"location"`
	TopN     int    `json:"top_n" validate:"gte=0,lte=500"`
}

type recommendResponse struct {
	Results       []types.MatchResult `json:"results"`
	Total         int                 `json:"total"`
	CorpusVersion uint64              `json:"corpus_version"`
}

// handleRecommend ranks the corpus against a user profile.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	profile := types.UserProfile{
		Skills:          splitSkillList(req.Skills),
		Summary:         req.Summary,
		DesiredRole:     req.DesiredRole,
		Locations:       req.Locations,
		ExperienceYears: req.ExperienceYears,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
	}

	model := s.store.Model()
	results := model.Rank(&profile)

	filters := ranking.Filters{
		Location:        req.Location,
		ExperienceYears: req.ExperienceYears,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		TopN:            req.TopN,
	}
	results = filters.Apply(results, s.store.Postings())

	respondJSON(w, http.StatusOK, recommendResponse{
		Results:       results,
		Total:         len(results),
		CorpusVersion: s.store.Version(),
	})
}

// handleInsights returns descriptive statistics over the corpus.
func (s *Server) handleInsights(w http.ResponseWriter, _ *http.Request) {
	stats := insights.Aggregate(s.store.Postings())
	respondJSON(w, http.StatusOK, stats)
}

// handleInsightsSummary returns the condensed market summary.
func (s *Server) handleInsightsSummary(w http.ResponseWriter, _ *http.Request) {
	summary := insights.Summary(s.store.Postings())
	respondJSON(w, http.StatusOK, summary)
}

// handleTrendingSkills returns the most-demanded skills across the corpus.
func (s *Server) handleTrendingSkills(w http.ResponseWriter, _ *http.Request) {
	trends := insights.TrendingSkills(s.store.Postings(), 0)
	respondJSON(w, http.StatusOK, map[string]any{"trending_skills": trends})
}

type roadmapRequest struct {
	Skills     string `json:"skills" validate:"required"`
	TargetRole string `json:"target_role" validate:"required"`
	Weeks      int    `json:"weeks" validate:"gte=0,lte=104"`
}

type roadmapResponse struct {
	Gap     types.SkillGap `json:"gap"`
	Roadmap types.Roadmap  `json:"roadmap"`
}

// handleRoadmap analyzes the user's skill gap for a target role and returns
// a learning plan. Model failures never surface; the fallback plan is used.
func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	var req roadmapRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	weeks := req.Weeks
	if weeks == 0 {
		weeks = s.roadmapWeeks
	}

	userSkills := splitSkillList(req.Skills)
	gap := skills.AnalyzeGap(userSkills, req.TargetRole, s.store.Postings())
	plan := s.generator.Generate(r.Context(), gap, weeks)

	respondJSON(w, http.StatusOK, roadmapResponse{Gap: gap, Roadmap: plan})
}

type adviceRequest struct {
	Question string `json:"question" validate:"required"`
}

// handleAdvice answers a free-form career question.
func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	answer := s.generator.CareerAdvice(r.Context(), req.Question)
	respondJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

type negotiationRequest struct {
	JobTitle        string  `json:"job_title" validate:"required"`
	ExperienceLevel string  `json:"experience_level" validate:"required"`
	CurrentSalary   float64 `json:"current_salary" validate:"gte=0"`
	TargetSalary    float64 `json:"target_salary" validate:"gte=0"`
}

// handleSalaryAdvice returns negotiation guidance for a salary move. Salaries
// are in lakhs per annum.
func (s *Server) handleSalaryAdvice(w http.ResponseWriter, r *http.Request) {
	var req negotiationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	advice := s.generator.SalaryNegotiationAdvice(r.Context(),
		req.JobTitle, req.ExperienceLevel, req.CurrentSalary, req.TargetSalary)
	respondJSON(w, http.StatusOK, map[string]string{"advice": advice})
}

type ingestResponse struct {
	Ingested      int    `json:"ingested"`
	Invalid       int    `json:"invalid"`
	CorpusVersion uint64 `json:"corpus_version"`
}

// handleIngestPostings replaces the corpus with a new raw batch. Invalid
// records are skipped, not fatal; an all-invalid batch is rejected.
func (s *Server) handleIngestPostings(w http.ResponseWriter, r *http.Request) {
	postings, invalid, err := ingestion.ReadBatch(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(postings) == 0 {
		respondError(w, http.StatusBadRequest, "batch contained no valid postings")
		return
	}

	s.store.Replace(postings)

	respondJSON(w, http.StatusOK, ingestResponse{
		Ingested:      len(postings),
		Invalid:       len(invalid),
		CorpusVersion: s.store.Version(),
	})
}

// handleListPostings returns the normalized corpus.
func (s *Server) handleListPostings(w http.ResponseWriter, _ *http.Request) {
	postings := s.store.Postings()
	respondJSON(w, http.StatusOK, map[string]any{
		"postings":       postings,
		"total":          len(postings),
		"corpus_version": s.store.Version(),
	})
}

// handleSimilarPostings returns postings closest to a given one in the
// ranking feature space.
func (s *Server) handleSimilarPostings(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "posting id must be an integer")
		return
	}

	topN := 5
	if v := r.URL.Query().Get("top_n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			respondError(w, http.StatusBadRequest, "top_n must be between 1 and 100")
			return
		}
		topN = n
	}

	found := false
	for _, p := range s.store.Postings() {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		respondError(w, http.StatusNotFound, "posting not found")
		return
	}

	similar := s.store.Model().SimilarPostings(id, topN)

	respondJSON(w, http.StatusOK, map[string]any{
		"posting_id": id,
		"similar":    similar,
	})
}

// splitSkillList splits free-text skills on commas, semicolons, and pipes.
func splitSkillList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})
	skills := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			skills = append(skills, f)
		}
	}
	return skills
}
