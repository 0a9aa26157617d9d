// Package prompt builds the grounded message sequence sent to the answer
// generator.
package prompt

import (
	"fmt"
	"strings"

	"odontobot/internal/ai"
	"odontobot/internal/model"
)

// GroundingConfig fixes the answer language and the exact refusal sentence.
// The refusal is a configuration constant: the generator is instructed to
// return it verbatim, and the pipeline can emit it without any external
// call when retrieval comes back empty.
type GroundingConfig struct {
	Language    string
	RefusalText string
}

// AssembleContext joins fragment texts with a blank line, in the rank
// order produced by retrieval (most relevant first).
func AssembleContext(texts []string) string {
	kept := make([]string, 0, len(texts))
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, "\n\n")
}

// BuildMessages produces the ordered sequence for the generator: the
// grounding system instruction, a bounded window of prior conversation,
// the (possibly expanded) question, then the assembled context.
func BuildMessages(cfg GroundingConfig, history []model.ChatMessage, question, context string) []ai.ChatMessage {
	messages := make([]ai.ChatMessage, 0, len(history)+3)
	messages = append(messages, ai.ChatMessage{
		Role:    "system",
		Content: systemInstruction(cfg),
	})
	for _, m := range history {
		role := m.Role
		if role == "" {
			role = model.RoleUser
		}
		messages = append(messages, ai.ChatMessage{Role: role, Content: m.Content})
	}
	messages = append(messages, ai.ChatMessage{
		Role:    model.RoleUser,
		Content: "Pregunta: " + strings.TrimSpace(question),
	})
	messages = append(messages, ai.ChatMessage{
		Role:    model.RoleUser,
		Content: "Contexto:\n" + context,
	})
	return messages
}

func systemInstruction(cfg GroundingConfig) string {
	return fmt.Sprintf(
		"Eres un asistente especializado en documentos clínicos odontológicos. "+
			"Responde la pregunta del usuario usando ÚNICAMENTE la información del contexto proporcionado. "+
			"Responde siempre en %s, de forma clara y profesional, sin inventar información que no aparezca en el contexto. "+
			"Si la respuesta no se puede derivar literalmente del contexto, responde exactamente esta frase, sin parafrasear: %q",
		cfg.Language, cfg.RefusalText,
	)
}
