package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careersight/careersight/internal/skills"
	"github.com/careersight/careersight/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	s, err := New(context.Background(), Config{Port: 0})
	require.NoError(t, err)
	t.Cleanup(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.Stop()
		}
	})
	return s
}

func seedPostings(t *testing.T, s *Server) {
	t.Helper()
	s.store.Replace([]types.RawPosting{
		{JobID: 1, JobTitle: "Data Analyst", Company: "Acme", Location: "bangalore",
			Salary: "5-8 LPA", Experience: "2-4 years", Skills: []string{"sql", "excel"}},
		{JobID: 2, JobTitle: "Data Scientist", Company: "Beta Labs", Location: "pune",
			Salary: "12-18 LPA", Experience: "3-5 years", Skills: []string{"python", "ml", "sql"}},
	})
}

func doRequest(s *Server, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	seedPostings(t, s)

	rec := doRequest(s, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "disabled", resp["database"])
	assert.EqualValues(t, 2, resp["postings"])
}

func TestRecommend_RanksHigherOverlapFirst(t *testing.T) {
	s := newTestServer(t)
	seedPostings(t, s)

	rec := doRequest(s, "POST", "/recommend", map[string]any{
		"skills": "python sql machine learning",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp recommendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 2, resp.Results[0].PostingID, "Data Scientist overlaps more")
	assert.Equal(t, 1, resp.Results[1].PostingID)
	assert.GreaterOrEqual(t, resp.Results[0].Score, resp.Results[1].Score)
	assert.Equal(t, 1, resp.Results[0].Rank)
}

func TestRecommend_CommaSeparatedSkills(t *testing.T) {
	s := newTestServer(t)
	seedPostings(t, s)

	rec := doRequest(s, "POST", "/recommend", map[string]any{
		"skills": "python, ml; sql",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp recommendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 2, resp.Results[0].PostingID)
	assert.Greater(t, resp.Results[0].Score, 0.0)
}

func TestRecommend_TopNFilter(t *testing.T) {
	s := newTestServer(t)
	seedPostings(t, s)

	rec := doRequest(s, "POST", "/recommend", map[string]any{
		"skills": "sql",
		"top_n":  1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp recommendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Results, 1)
}

func TestRecommend_MissingSkills(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "POST", "/recommend", map[string]any{"summary": "no skills"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request")
}

func TestRecommend_EmptyCorpus(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "POST", "/recommend", map[string]any{"skills": "python"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp recommendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Results)
}

func TestServer_CustomVocabulary(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	s, err := New(context.Background(), Config{
		Port:       0,
		Vocabulary: skills.Vocabulary{"Rust": {"rust", "rustlang"}},
	})
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)

	s.store.Replace([]types.RawPosting{
		{JobID: 1, JobTitle: "Systems Engineer", Description: "Services written in rustlang and golang."},
	})

	enriched := s.store.Postings()[0].Skills
	assert.Contains(t, enriched, "Rust")
	assert.NotContains(t, enriched, "Go", "built-in taxonomy replaced, not merged")
}

func TestInsights(t *testing.T) {
	s := newTestServer(t)
	seedPostings(t, s)

	rec := doRequest(s, "GET", "/insights", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats types.MarketStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalPostings)
	require.NotEmpty(t, stats.TopSkills)
	assert.Equal(t, "sql", stats.TopSkills[0].Name)
	assert.Equal(t, 2, stats.TopSkills[0].Count)
}

func TestTrendingSkills(t *testing.T) {
	s := newTestServer(t)
	seedPostings(t, s)

	rec := doRequest(s, "GET", "/insights/trending", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TrendingSkills []types.SkillTrend `json:"trending_skills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.TrendingSkills)
	assert.Equal(t, types.SkillTrend{Skill: "sql", Count: 2, Trend: "up"}, resp.TrendingSkills[0])
}

func TestSalaryAdvice_FallbackWithoutModel(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "POST", "/advice/salary", map[string]any{
		"job_title":        "Data Scientist",
		"experience_level": "Mid",
		"current_salary":   12,
		"target_salary":    18,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["advice"], "Data Scientist")

	rec = doRequest(s, "POST", "/advice/salary", map[string]any{"job_title": "X"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoadmap_FallbackWithoutModel(t *testing.T) {
	s := newTestServer(t)
	seedPostings(t, s)

	rec := doRequest(s, "POST", "/roadmap", map[string]any{
		"skills":      "sql",
		"target_role": "Data Scientist",
		"weeks":       4,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp roadmapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Data Scientist", resp.Gap.TargetRole)
	assert.Equal(t, types.RoadmapSourceFallback, resp.Roadmap.Source)
	assert.Len(t, resp.Roadmap.Weeks, 4)
}

func TestIngestPostings(t *testing.T) {
	s := newTestServer(t)

	batch := []map[string]any{
		{"job_id": 1, "job_title": "Data Analyst", "skills": []string{"sql"}},
		{"job_id": "bad"},
		{"job_id": 3, "job_title": "ML Engineer", "skills": []string{"python"}},
	}

	rec := doRequest(s, "POST", "/postings", batch)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ingestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Ingested)
	assert.Equal(t, 1, resp.Invalid)
	assert.Equal(t, uint64(1), resp.CorpusVersion)
	assert.Equal(t, 2, s.store.Count())
}

func TestIngestPostings_AllInvalid(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "POST", "/postings", []map[string]any{{"job_id": "bad"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimilarPostings(t *testing.T) {
	s := newTestServer(t)
	seedPostings(t, s)

	rec := doRequest(s, "GET", "/postings/1/similar", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		PostingID int   `json:"posting_id"`
		Similar   []int `json:"similar"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.PostingID)
	assert.Equal(t, []int{2}, resp.Similar)

	rec = doRequest(s, "GET", "/postings/99/similar", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(s, "GET", "/postings/abc/similar", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPersistenceEndpointsDegradeWithoutDatabase(t *testing.T) {
	s := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/users/5a04e1e0-b0ac-4f4f-b063-9e8f0e1c1aaa/profile"},
		{"PUT", "/users/5a04e1e0-b0ac-4f4f-b063-9e8f0e1c1aaa/profile"},
		{"GET", "/users/5a04e1e0-b0ac-4f4f-b063-9e8f0e1c1aaa/applications"},
		{"DELETE", "/applications/5a04e1e0-b0ac-4f4f-b063-9e8f0e1c1aaa"},
		{"GET", "/users/5a04e1e0-b0ac-4f4f-b063-9e8f0e1c1aaa/preferences"},
	}

	for _, p := range paths {
		rec := doRequest(s, p.method, p.path, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "%s %s", p.method, p.path)
		assert.Contains(t, rec.Body.String(), "persistence unavailable")
	}

	// Matching still works in degraded mode.
	seedPostings(t, s)
	rec := doRequest(s, "POST", "/recommend", map[string]any{"skills": "python"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdvice_FallbackWithoutModel(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "POST", "/advice", map[string]any{
		"question": "How do I improve my resume?",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["answer"])
}
