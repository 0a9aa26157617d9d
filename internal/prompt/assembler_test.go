package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odontobot/internal/model"
)

var grounding = GroundingConfig{
	Language:    "español",
	RefusalText: "Lo siento, no tengo información sobre eso en los documentos de la clínica.",
}

func TestAssembleContextJoinsInRankOrder(t *testing.T) {
	got := AssembleContext([]string{"más relevante", "relevante", "menos relevante"})
	assert.Equal(t, "más relevante\n\nrelevante\n\nmenos relevante", got)
}

func TestAssembleContextSkipsBlankFragments(t *testing.T) {
	got := AssembleContext([]string{"uno", "   ", "dos"})
	assert.Equal(t, "uno\n\ndos", got)
}

func TestBuildMessagesOrder(t *testing.T) {
	history := []model.ChatMessage{
		{Role: model.RoleUser, Content: "hola"},
		{Role: model.RoleAssistant, Content: "hola, ¿en qué puedo ayudarte?"},
	}

	got := BuildMessages(grounding, history, "¿qué es el esmalte?", "El esmalte es la capa externa del diente.")
	require.Len(t, got, 5)

	assert.Equal(t, "system", got[0].Role)
	assert.Equal(t, "hola", got[1].Content)
	assert.Equal(t, "hola, ¿en qué puedo ayudarte?", got[2].Content)
	assert.Equal(t, model.RoleUser, got[3].Role)
	assert.Contains(t, got[3].Content, "¿qué es el esmalte?")
	assert.Contains(t, got[4].Content, "El esmalte es la capa externa del diente.")
}

func TestBuildMessagesGroundingInstruction(t *testing.T) {
	got := BuildMessages(grounding, nil, "pregunta", "contexto")
	require.NotEmpty(t, got)

	system := got[0].Content
	assert.Contains(t, system, grounding.RefusalText, "the exact refusal sentence must be part of the contract")
	assert.Contains(t, system, "español")
	assert.Contains(t, system, "ÚNICAMENTE")
}

func TestBuildMessagesDefaultsEmptyHistoryRole(t *testing.T) {
	history := []model.ChatMessage{{Content: "sin rol"}}
	got := BuildMessages(grounding, history, "p", "c")
	assert.Equal(t, model.RoleUser, got[1].Role)
}
