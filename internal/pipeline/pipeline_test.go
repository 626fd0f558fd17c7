package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/scholar-cli/internal/config"
	"github.com/sells-group/scholar-cli/internal/model"
	"github.com/sells-group/scholar-cli/internal/store"
)

const sampleText = `Title: Effects of Sleep on Memory Consolidation
by Chen, Li
(2021)

This study draws on Cognitive Load Theory. We administered a survey
questionnaire to participants and ran regression models. The treatment
group (M = 4.21, SD = 0.87, n = 52) differed from controls, p < .001,
d = 0.82. All participants provided informed consent. A key limitation
of this study is the small sample.`

func testConfig() *config.Config {
	return &config.Config{
		Pipeline: config.PipelineConfig{AlphaLevel: 0.05, MinTheoryConfidence: 0.3},
	}
}

func TestAnalyze(t *testing.T) {
	p := New(testConfig(), nil, nil)

	a := p.Analyze(model.Document{Source: "paper.txt", Text: sampleText})

	require.Len(t, a.Citations, 1)
	assert.Equal(t, "Effects of Sleep on Memory Consolidation", a.Citations[0].Title)
	assert.Equal(t, 2021, a.Citations[0].Year)
	require.Len(t, a.Credibility, 1)

	require.NotNil(t, a.Methodology)
	assert.Equal(t, model.MethodQuantitative, a.Methodology.MethodologyType)
	assert.NotEmpty(t, a.Methodology.Limitations)

	require.NotEmpty(t, a.Theories)
	assert.Equal(t, "Cognitive Load Theory", a.Theories[0].TheoryName)

	assert.NotEmpty(t, a.Ethics)
	assert.NotEmpty(t, a.Measures)
	assert.Contains(t, a.Tests, model.TestRegression)
}

func TestAnalyzeNoisyDocument(t *testing.T) {
	p := New(testConfig(), nil, nil)

	a := p.Analyze(model.Document{Text: "###"})

	assert.Empty(t, a.Citations)
	assert.Empty(t, a.Measures)
	assert.Equal(t, model.MethodUnknown, a.Methodology.MethodologyType)
}

func TestRunPersists(t *testing.T) {
	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	ctx := context.Background()
	require.NoError(t, st.Migrate(ctx))

	p := New(testConfig(), st, nil)

	a, err := p.Run(ctx, model.Document{Source: "paper.txt", Text: sampleText})
	require.NoError(t, err)
	require.NotEmpty(t, a.RunID)

	run, err := st.GetRun(ctx, a.RunID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, run.Status)
	require.NotNil(t, run.Result)
	assert.Equal(t, 1, run.Result.CitationsFound)
	assert.Greater(t, run.Result.MeanCredibility, 0.0)

	citations, err := st.ListCitations(ctx, a.RunID)
	require.NoError(t, err)
	require.Len(t, citations, 1)
	assert.Equal(t, a.Citations[0].CitationID, citations[0].CitationID)
}
