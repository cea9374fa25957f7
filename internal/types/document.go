// Package types provides type definitions for structured data used throughout the resume-matcher system.
package types

import "time"

// DocumentType distinguishes the two kinds of documents the system ingests.
type DocumentType string

const (
	DocumentTypeResume         DocumentType = "resume"
	DocumentTypeJobDescription DocumentType = "job_description"
)

// DocumentSection represents a named region of a document, with the line
// range it was taken from. Section names come from a closed label set
// (summary, experience, skills, ...) or "content" when nothing matched.
type DocumentSection struct {
	Name      string `json:"name"`
	Text      string `json:"text"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
}

// DocumentMetadata holds basic statistics computed from the normalized text.
type DocumentMetadata struct {
	WordCount      int     `json:"word_count"`
	LineCount      int     `json:"line_count"`
	CharacterCount int     `json:"character_count"`
	HasSections    bool    `json:"has_sections"`
	EnglishRatio   float64 `json:"english_ratio"`
}

// Document is an ingested resume or job description. Created once at
// ingestion and immutable thereafter; ownership sits with the document store.
type Document struct {
	ID              string               `json:"document_id"`
	Type            DocumentType         `json:"document_type"`
	Source          string               `json:"source"` // "text" or "file"
	ContentHash     string               `json:"content_hash"`
	CleanText       string               `json:"clean_text"`
	Sections        []DocumentSection    `json:"sections,omitempty"`
	ExtractedSkills []ExtractedSkill     `json:"extracted_skills,omitempty"`
	Vectors         map[string][]float64 `json:"vectors,omitempty"`
	Metadata        DocumentMetadata     `json:"metadata"`
	CreatedAt       time.Time            `json:"created_at"`
}
