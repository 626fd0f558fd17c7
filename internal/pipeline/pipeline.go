package pipeline

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/scholar-cli/internal/analysis"
	"github.com/sells-group/scholar-cli/internal/citation"
	"github.com/sells-group/scholar-cli/internal/config"
	"github.com/sells-group/scholar-cli/internal/credibility"
	"github.com/sells-group/scholar-cli/internal/model"
	"github.com/sells-group/scholar-cli/internal/stats"
	"github.com/sells-group/scholar-cli/internal/store"
)

// Pipeline runs the full extraction stack over one document: citations,
// credibility, methodology, theories, ethics, statistics.
type Pipeline struct {
	cfg       *config.Config
	store     store.Store
	evaluator *credibility.Evaluator
}

// New creates a Pipeline. The store may be nil, in which case runs are
// not persisted.
func New(cfg *config.Config, st store.Store, evaluator *credibility.Evaluator) *Pipeline {
	if evaluator == nil {
		evaluator = credibility.NewEvaluator(credibility.Lists{})
	}
	return &Pipeline{cfg: cfg, store: st, evaluator: evaluator}
}

// Analyze extracts everything from one document. It is a pure function
// of its input: noisy or empty documents yield sparse results, never an
// error.
func (p *Pipeline) Analyze(doc model.Document) *model.Analysis {
	mgr := citation.NewManager()

	var c *model.Citation
	if doc.HTML != "" {
		c = citation.ExtractFromWebpage(doc.HTML, doc.Source)
	} else {
		c = citation.ExtractFromText(doc.Text, doc.Source)
	}
	if c != nil {
		mgr.Add(c)
	}

	a := &model.Analysis{
		Document:  doc,
		Citations: mgr.List(),
	}

	for _, cit := range a.Citations {
		a.Credibility = append(a.Credibility, p.evaluator.Evaluate(sourceFromCitation(cit)))
	}

	meth := analysis.ExtractMethodology(doc.Text, doc.Title)
	a.Methodology = &meth

	minConf := p.cfg.Pipeline.MinTheoryConfidence
	for _, th := range analysis.ExtractTheories(doc.Text, doc.Title) {
		if th.Confidence >= minConf {
			a.Theories = append(a.Theories, th)
		}
	}

	a.Ethics = analysis.ExtractEthics(doc.Text).Considerations
	a.Measures = stats.ExtractMeasures(doc.Text)
	a.Tests = stats.IdentifyTests(doc.Text)

	zap.L().Info("pipeline: document analyzed",
		zap.String("source", doc.Source),
		zap.Int("citations", len(a.Citations)),
		zap.Int("measures", len(a.Measures)),
		zap.Int("theories", len(a.Theories)),
	)
	return a
}

// Run analyzes a document as a persisted run: a run row is created,
// moved through running to complete, and the citations are saved.
func (p *Pipeline) Run(ctx context.Context, doc model.Document) (*model.Analysis, error) {
	start := time.Now()

	var run *model.Run
	if p.store != nil {
		var err error
		run, err = p.store.CreateRun(ctx, doc)
		if err != nil {
			return nil, err
		}
		if err := p.store.UpdateRunStatus(ctx, run.ID, model.RunStatusRunning); err != nil {
			return nil, err
		}
	}

	a := p.Analyze(doc)
	if run != nil {
		a.RunID = run.ID
	}

	if p.store != nil {
		if err := p.store.SaveCitations(ctx, run.ID, a.Citations); err != nil {
			return nil, err
		}
		result := summarize(a, time.Since(start))
		if err := p.store.UpdateRunResult(ctx, run.ID, result); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// summarize collapses an Analysis into the aggregate stored with the run.
func summarize(a *model.Analysis, elapsed time.Duration) *model.RunResult {
	result := &model.RunResult{
		CitationsFound: len(a.Citations),
		MeasuresFound:  len(a.Measures),
		TheoriesFound:  len(a.Theories),
		DurationMS:     elapsed.Milliseconds(),
	}
	if len(a.Credibility) > 0 {
		var sum float64
		for _, cred := range a.Credibility {
			sum += cred.Score
		}
		result.MeanCredibility = sum / float64(len(a.Credibility))
	}
	return result
}

// sourceFromCitation maps a stored citation onto the evaluator's input.
func sourceFromCitation(c model.Citation) credibility.Source {
	src := credibility.Source{
		Title:        c.Title,
		Venue:        c.Venue,
		URL:          c.URL,
		VenueType:    c.VenueType,
		Year:         c.Year,
		IsOpenAccess: c.IsOpenAccess,
	}
	if c.CitationCount > 0 {
		n := c.CitationCount
		src.CitationCount = &n
	}
	return src
}

// titleOf returns the document's display title, falling back to its
// source path or URL.
func titleOf(doc model.Document) string {
	if strings.TrimSpace(doc.Title) != "" {
		return doc.Title
	}
	if doc.Source != "" {
		return doc.Source
	}
	return "untitled document"
}
