package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keywords = []string{"esmalte", "dentina", "pulpa", "caries"}
	prefixes = []string{"y ", "y,", "y eso", "entonces "}
)

func TestMatchKeyword(t *testing.T) {
	r := NewRewriter(keywords, prefixes)

	kw, ok := r.MatchKeyword("¿Qué es el ESMALTE dental?")
	require.True(t, ok)
	assert.Equal(t, "esmalte", kw)

	_, ok = r.MatchKeyword("¿cuánto cuesta una consulta?")
	assert.False(t, ok)
}

func TestKeywordQuestionIsNeverAFollowUpCandidate(t *testing.T) {
	r := NewRewriter(keywords, prefixes)

	// "y la pulpa dental?" starts like a continuation but carries a topic
	// keyword, so the keyword check wins and expansion never runs.
	question := "y la pulpa dental?"
	kw, ok := r.MatchKeyword(question)
	require.True(t, ok)
	assert.Equal(t, "pulpa", kw)
}

func TestIsFollowUp(t *testing.T) {
	r := NewRewriter(keywords, prefixes)

	assert.True(t, r.IsFollowUp("y eso?"))
	assert.True(t, r.IsFollowUp("¿Y eso qué significa?"))
	assert.True(t, r.IsFollowUp("entonces duele mucho?"))
	assert.False(t, r.IsFollowUp("¿qué horario tienen?"))
	assert.False(t, r.IsFollowUp("ayuda"))
}

func TestExpandSplicesPriorQuestion(t *testing.T) {
	r := NewRewriter(keywords, prefixes)

	got := r.Expand("¿qué es el esmalte?", "y eso?")
	assert.Contains(t, got, "¿qué es el esmalte?")
	assert.Contains(t, got, "y eso?")
}

func TestExpandWithoutPriorContextReturnsQuestionUnchanged(t *testing.T) {
	r := NewRewriter(keywords, prefixes)

	assert.Equal(t, "y eso?", r.Expand("", "y eso?"))
	assert.Equal(t, "y eso?", r.Expand("   ", " y eso? "))
}
