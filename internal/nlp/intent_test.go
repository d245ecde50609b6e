package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"healthassist/internal/domain"
)

func TestClassify_DescribeSymptoms(t *testing.T) {
	c := Classify("I feel pain in my leg")

	assert.Equal(t, domain.IntentDescribeSymptoms, c.Intent)
	assert.Greater(t, c.Confidence, 0.0)
}

func TestClassify_AskRecommendations(t *testing.T) {
	c := Classify("what should I take for this")

	assert.Equal(t, domain.IntentAskRecommendations, c.Intent)
}

func TestClassify_ProvideHistory(t *testing.T) {
	c := Classify("it started last winter and happened before")

	assert.Equal(t, domain.IntentProvideHistory, c.Intent)
}

func TestClassify_NoEvidenceIsUnknown(t *testing.T) {
	c := Classify("the weather is nice today")

	assert.Equal(t, domain.IntentUnknown, c.Intent)
	assert.Zero(t, c.Confidence)
	assert.Empty(t, c.SubIntents)
}

func TestClassify_EmptyInput(t *testing.T) {
	c := Classify("")

	assert.Equal(t, domain.IntentUnknown, c.Intent)
	assert.Zero(t, c.Confidence)
}

func TestClassify_TieResolvesToEarlierIntent(t *testing.T) {
	// "help" is a pattern of both ask_recommendations and emergency_help,
	// with equal pattern-set sizes; the earlier intent wins the tie.
	c := Classify("help")

	assert.Equal(t, domain.IntentAskRecommendations, c.Intent)
}

func TestClassify_SubIntentsAboveThreshold(t *testing.T) {
	c := Classify("I feel pain and ache, it hurts, I am having symptoms")

	assert.Equal(t, domain.IntentDescribeSymptoms, c.Intent)
	assert.Contains(t, c.SubIntents, domain.IntentDescribeSymptoms)
}

func TestClassify_EarlierMatchesScoreHigher(t *testing.T) {
	early := Classify("pain is all I noticed during the long afternoon walk")
	late := Classify("during the long afternoon walk I noticed some pain")

	assert.Equal(t, domain.IntentDescribeSymptoms, early.Intent)
	assert.Equal(t, domain.IntentDescribeSymptoms, late.Intent)
	assert.Greater(t, early.Confidence, late.Confidence)
}
