package api

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"resume-extract/internal/extract"
	"resume-extract/internal/match"
	"resume-extract/internal/storage"
)

// ParseRequest is the plain-text parse payload.
type ParseRequest struct {
	Text string `json:"text"`
}

// MatchRequest pairs a job description with previously extracted skills.
type MatchRequest struct {
	JobDescription string   `json:"job_description"`
	ResumeSkills   []string `json:"resume_skills"`
}

// ParseHandler extracts structured data from plain resume text
// @Summary Parse resume text
// @Description Run the extraction pipeline over plain resume text
// @Tags resume
// @Accept json
// @Produce json
// @Param request body ParseRequest true "Resume text"
// @Success 200 {object} extract.Result
// @Failure 400 {object} extract.ErrorResult
// @Router /resume/parse [post]
func (a *API) ParseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	a.runPipeline(w, r, req.Text, "api", "")
}

// UploadHandler converts an uploaded resume file and extracts from it
// @Summary Upload and parse a resume
// @Description Upload a resume file (PDF/DOCX/TXT), convert it to plain text, and run the extraction pipeline
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF, DOCX or TXT)"
// @Success 200 {object} extract.Result
// @Failure 400 {object} extract.ErrorResult
// @Router /resume/upload [post]
func (a *API) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "file too large or invalid (max 10MB)", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	if ext != ".pdf" && ext != ".docx" && ext != ".doc" && ext != ".txt" {
		http.Error(w, "invalid file type (supported: PDF, DOCX, TXT)", http.StatusBadRequest)
		return
	}

	doc, err := a.parser.ParseFile(header.Filename, file)
	if err != nil {
		log.Printf("Failed to convert upload %s: %v", header.Filename, err)
		http.Error(w, "failed to parse resume file", http.StatusInternalServerError)
		return
	}

	log.Printf("Resume converted: %s (%d bytes text)", doc.Filename, len(doc.Text))

	a.runPipeline(w, r, doc.Text, "upload", doc.Filename)
}

// runPipeline validates, extracts, queues persistence, and writes the
// response. Validation failures signal HTTP failure; extraction faults are
// downgraded to the soft error-shaped body per the pipeline contract.
func (a *API) runPipeline(w http.ResponseWriter, r *http.Request, text, source, filename string) {
	startTime := time.Now()

	if err := extract.ValidateInput(text); err != nil {
		writeJSON(w, http.StatusBadRequest, &extract.ErrorResult{
			Error:   "Input text too short",
			Skipped: true,
		})
		return
	}

	result, err := a.extractor.Extract(text)
	if err != nil {
		log.Printf("Extraction failed (%s): %v", source, err)
		writeJSON(w, http.StatusOK, extract.ErrorResultFrom(err))
		return
	}

	a.queueSave(result, source, filename, len(text))

	log.Printf("Extraction complete (%s): %d skills, %d experience, %d education (took %dms)",
		source, result.Summary.TotalSkills, result.Summary.TotalExperience,
		result.Summary.TotalEducation, time.Since(startTime).Milliseconds())

	writeJSON(w, http.StatusOK, result)
}

// MatchHandler scores resume skills against a job description
// @Summary Match skills against a job description
// @Description Extract skills from the JD text and intersect them with the supplied resume skills
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body MatchRequest true "JD text and resume skills"
// @Success 200 {object} match.Analysis
// @Failure 400 {object} map[string]string
// @Router /jobs/match [post]
func (a *API) MatchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	jdSkills := a.extractor.Skills().Match(req.JobDescription)
	analysis := match.Analyze(req.ResumeSkills, jdSkills)

	writeJSON(w, http.StatusOK, analysis)
}

// RecentHandler lists recently stored extractions
// @Summary List recent extractions
// @Description Return the most recently persisted extraction records
// @Tags resume
// @Produce json
// @Param limit query int false "Limit results" default(50)
// @Success 200 {array} storage.ExtractionRecord
// @Failure 503 {object} map[string]string
// @Router /resumes/recent [get]
func (a *API) RecentHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if a.store == nil {
		http.Error(w, "persistence not configured", http.StatusServiceUnavailable)
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := a.store.ListRecent(r.Context(), limit)
	if err != nil {
		log.Printf("Failed to list extractions: %v", err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []*storage.ExtractionRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}
