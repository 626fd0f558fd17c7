package model

import "time"

// RunStatus represents the current state of an analysis run.
type RunStatus string

const (
	RunStatusQueued   RunStatus = "queued"
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Document is one input to the analysis pipeline: free text plus optional
// provenance. HTML is set when the source was a web page.
type Document struct {
	Source string `json:"source,omitempty"` // file path or URL
	Title  string `json:"title,omitempty"`
	Text   string `json:"text"`
	HTML   string `json:"html,omitempty"`
}

// Run represents a single pipeline invocation over one document.
type Run struct {
	ID        string     `json:"id"`
	Document  Document   `json:"document"`
	Status    RunStatus  `json:"status"`
	Result    *RunResult `json:"result,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RunResult holds the aggregate outcome of a run.
type RunResult struct {
	CitationsFound  int     `json:"citations_found"`
	MeasuresFound   int     `json:"measures_found"`
	TheoriesFound   int     `json:"theories_found"`
	MeanCredibility float64 `json:"mean_credibility"`
	DurationMS      int64   `json:"duration_ms"`
	Report          string  `json:"report,omitempty"`
	Error           string  `json:"error,omitempty"`
}

// Analysis is the full structured output of the pipeline for one document.
type Analysis struct {
	RunID       string                 `json:"run_id"`
	Document    Document               `json:"document"`
	Citations   []Citation             `json:"citations,omitempty"`
	Credibility []SourceCredibility    `json:"credibility,omitempty"`
	Methodology *MethodologyInfo       `json:"methodology,omitempty"`
	Theories    []TheoryInfo           `json:"theories,omitempty"`
	Ethics      []EthicalConsideration `json:"ethics,omitempty"`
	Measures    []StatisticalMeasure   `json:"measures,omitempty"`
	Tests       []StatisticalTest      `json:"tests,omitempty"`
}
