package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-extract/internal/extract"
	"resume-extract/internal/ner"
)

func newTestAPI(recognizer ner.Recognizer) *API {
	return NewAPI(nil, extract.New(recognizer, extract.Config{}), nil)
}

func postJSON(t *testing.T, handler http.HandlerFunc, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestParseHandler_ShortInputRejectedBeforeExtraction(t *testing.T) {
	calls := 0
	recognizer := ner.Func(func(text string) ([]ner.Entity, error) {
		calls++
		return nil, nil
	})
	a := newTestAPI(recognizer)

	rec := postJSON(t, a.ParseHandler, ParseRequest{Text: "too short"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result extract.ErrorResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Skipped)
	assert.Equal(t, "Input text too short", result.Error)

	// The extractors must never run on rejected input.
	assert.Zero(t, calls)
}

func TestParseHandler_Success(t *testing.T) {
	a := newTestAPI(&ner.Static{Entities: []ner.Entity{
		{Label: ner.LabelPerson, Text: "Jane Doe"},
	}})

	text := "Jane Doe\njane.doe@example.com\nPython and Docker engineer with Go experience since 2015."
	rec := postJSON(t, a.ParseHandler, ParseRequest{Text: text})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	for _, key := range []string{"contact", "skills", "experience", "education", "summary"} {
		assert.Contains(t, decoded, key)
	}

	var result extract.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotNil(t, result.Contact.Email)
	assert.Equal(t, "jane.doe@example.com", *result.Contact.Email)
	assert.Contains(t, result.Skills, "Python")
}

func TestParseHandler_MethodNotAllowed(t *testing.T) {
	a := newTestAPI(&ner.Static{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	a.ParseHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestParseHandler_RecognizerFaultReturnsSoftError(t *testing.T) {
	recognizer := ner.Func(func(text string) ([]ner.Entity, error) {
		return nil, assert.AnError
	})
	a := newTestAPI(recognizer)

	text := "A long enough resume text for validation to pass, mentioning Go and Python throughout."
	rec := postJSON(t, a.ParseHandler, ParseRequest{Text: text})

	// Extraction faults are downgraded to the error-shaped body, not an
	// HTTP failure.
	require.Equal(t, http.StatusOK, rec.Code)

	var result extract.ErrorResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Skipped)
	assert.Contains(t, result.Reason, "Extraction failed")
}

func TestMatchHandler(t *testing.T) {
	a := newTestAPI(&ner.Static{})

	rec := postJSON(t, a.MatchHandler, MatchRequest{
		JobDescription: "Looking for a Go developer with Docker and Terraform experience",
		ResumeSkills:   []string{"Go", "Docker", "Python"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var analysis struct {
		MatchedSkills []string `json:"matchedSkills"`
		MissingSkills []string `json:"missingSkills"`
		MatchScore    float64  `json:"matchScore"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))

	assert.Contains(t, analysis.MatchedSkills, "Go")
	assert.Contains(t, analysis.MatchedSkills, "Docker")
	assert.Contains(t, analysis.MissingSkills, "Terraform")
	assert.Greater(t, analysis.MatchScore, 0.0)
}

func TestRecentHandler_WithoutStore(t *testing.T) {
	a := newTestAPI(&ner.Static{})

	req := httptest.NewRequest(http.MethodGet, "/api/resumes/recent", nil)
	rec := httptest.NewRecorder()
	a.RecentHandler(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
