package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/scholar-cli/internal/model"
)

func TestExtractTheoriesWithConstructsAndDefinitions(t *testing.T) {
	content := "This study draws on Social Cognitive Theory. " +
		"Key constructs include Self-Efficacy, Outcome Expectations, and Observational Learning. " +
		"Self-Efficacy refers to a person's belief in their capacity to act."

	theories := ExtractTheories(content, "")
	require.Len(t, theories, 1)

	th := theories[0]
	assert.Equal(t, "Social Cognitive Theory", th.TheoryName)
	assert.Equal(t, model.TheoryPsychological, th.TheoryType)
	assert.Equal(t, []string{"Self-Efficacy", "Outcome Expectations", "Observational Learning"}, th.KeyConstructs)
	require.Contains(t, th.Definitions, "Self-Efficacy")
	assert.Contains(t, th.Definitions["Self-Efficacy"], "belief in their capacity")
	assert.InDelta(t, 0.9, th.Confidence, 0.001)
}

func TestExtractTheoriesOrderAndDedup(t *testing.T) {
	content := "Human Capital Theory guides our analysis. " +
		"Later we apply the Technology Acceptance Model. " +
		"Human Capital Theory is revisited in the discussion."

	theories := ExtractTheories(content, "")
	require.Len(t, theories, 2, "repeat mentions collapse")

	assert.Equal(t, "Human Capital Theory", theories[0].TheoryName)
	assert.Equal(t, "Technology Acceptance Model", theories[1].TheoryName)
	assert.Equal(t, model.TheorySociological, theories[0].TheoryType)
}

func TestExtractTheoriesBareMentionConfidence(t *testing.T) {
	theories := ExtractTheories("The results support Expectancy Violation Theory.", "")
	require.Len(t, theories, 1)
	assert.Equal(t, "Expectancy Violation Theory", theories[0].TheoryName)
	assert.InDelta(t, 0.5, theories[0].Confidence, 0.001, "no constructs or definitions found")
}

func TestExtractTheoriesNoneFound(t *testing.T) {
	assert.Empty(t, ExtractTheories("We measured reaction times across four conditions.", ""))
}
