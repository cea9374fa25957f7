package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Upload size limits.
const (
	maxResumeChars = 50000
	maxJDChars     = 20000
)

const topSkillCount = 10

type uploadResumeRequest struct {
	Text string `json:"text" validate:"required"`
}

type uploadJobRequest struct {
	// Exactly one of Text and HTML must be set; HTML postings are reduced
	// to visible text before analysis.
	Text string `json:"text,omitempty"`
	HTML string `json:"html,omitempty"`
}

type analyzeRequest struct {
	ResumeID   string `json:"resume_id" validate:"required"`
	JDID       string `json:"jd_id" validate:"required"`
	TargetRole string `json:"target_role,omitempty"`
}

type skillConfidence struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

type skillImportance struct {
	Name       string  `json:"name"`
	Importance float64 `json:"importance"`
}

func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	var req uploadResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.validationResponse(w, err)
		return
	}
	if len(req.Text) > maxResumeChars {
		s.errorResponse(w, http.StatusBadRequest, "resume text too long (max 50KB)")
		return
	}

	doc, err := s.svc.IngestResume(r.Context(), ingestion.CleanText(req.Text), "text")
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sections := make([]string, 0, len(doc.Sections))
	for _, sec := range doc.Sections {
		sections = append(sections, sec.Name)
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"document_id":       doc.ID,
		"detected_sections": sections,
		"skills":            topConfidences(doc.ExtractedSkills),
	})
}

func (s *Server) handleUploadJob(w http.ResponseWriter, r *http.Request) {
	var req uploadJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text := req.Text
	switch {
	case req.Text == "" && req.HTML == "":
		s.errorResponse(w, http.StatusBadRequest, "one of text or html is required")
		return
	case req.Text != "" && req.HTML != "":
		s.errorResponse(w, http.StatusBadRequest, "text and html are mutually exclusive")
		return
	case req.HTML != "":
		extracted, err := ingestion.HTMLToText(req.HTML)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		text = extracted
	default:
		text = ingestion.CleanText(req.Text)
	}
	if len(text) > maxJDChars {
		s.errorResponse(w, http.StatusBadRequest, "job description text too long (max 20KB)")
		return
	}

	doc, err := s.svc.IngestJobDescription(r.Context(), text, "text")
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"document_id": doc.ID,
		"skills":      topImportances(doc.ExtractedSkills, doc.CleanText),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.validationResponse(w, err)
		return
	}

	analysis, meta, err := s.svc.Analyze(r.Context(), req.ResumeID, req.JDID, req.TargetRole)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analysis": analysis,
		"metadata": meta,
	})
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.svc.GetAnalysis(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"analysis": analysis})
}

func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteAnalysis(r.Context(), r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "analysis deleted"})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 20)
	if err != nil || limit < 1 || limit > 100 {
		s.errorResponse(w, http.StatusBadRequest, "limit must be between 1 and 100")
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		s.errorResponse(w, http.StatusBadRequest, "offset must be non-negative")
		return
	}

	items, err := s.svc.History(r.Context(), limit, offset)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.Stats(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"uptime_sec": int(time.Since(s.startedAt).Seconds()),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Reset(r.Context()); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "system data cleared"})
}

func (s *Server) validationResponse(w http.ResponseWriter, err error) {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{
			Field:   errs[0].Field(),
			Message: errs[0].Tag(),
		}).Error())
		return
	}
	s.errorResponse(w, http.StatusBadRequest, err.Error())
}

func queryInt(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}

func topConfidences(extracted []types.ExtractedSkill) []skillConfidence {
	top := extracted
	if len(top) > topSkillCount {
		top = top[:topSkillCount]
	}
	out := make([]skillConfidence, 0, len(top))
	for _, s := range top {
		out = append(out, skillConfidence{Name: s.Name, Confidence: s.Confidence})
	}
	return out
}

func topImportances(extracted []types.ExtractedSkill, jdText string) []skillImportance {
	top := extracted
	if len(top) > topSkillCount {
		top = top[:topSkillCount]
	}
	out := make([]skillImportance, 0, len(top))
	for _, s := range top {
		out = append(out, skillImportance{Name: s.Name, Importance: skills.Importance(s.Name, jdText)})
	}
	return out
}
