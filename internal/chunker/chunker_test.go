package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkEmptyInput(t *testing.T) {
	assert.Nil(t, Chunk("", 500))
	assert.Nil(t, Chunk("   \n\n\t  ", 500))
}

func TestChunkIdempotent(t *testing.T) {
	text := "El esmalte es la capa externa del diente. Protege la dentina.\n\n" +
		"La dentina es el tejido bajo el esmalte. Contiene túbulos que llegan a la pulpa.\n\n" +
		strings.Repeat("La pulpa dental contiene los nervios y vasos sanguíneos del diente. ", 20)

	first := Chunk(text, 200)
	second := Chunk(text, 200)
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestChunkRespectsMaxLength(t *testing.T) {
	text := strings.Repeat("La caries avanza desde el esmalte hacia la dentina si no se trata. ", 50)
	for _, frag := range Chunk(text, 150) {
		assert.LessOrEqual(t, len([]rune(frag)), 150, "fragment %q", frag)
	}
}

func TestChunkNeverEmitsEmptyFragments(t *testing.T) {
	text := "Primer párrafo.\n\n\n\n   \n\nSegundo párrafo."
	for _, frag := range Chunk(text, 50) {
		assert.NotEmpty(t, strings.TrimSpace(frag))
	}
}

func TestChunkPrefersParagraphBoundaries(t *testing.T) {
	text := "La gingivitis es la inflamación de las encías.\n\n" +
		"La periodontitis afecta al hueso que sostiene los dientes."

	got := Chunk(text, 70)
	require.Len(t, got, 2)
	assert.Equal(t, "La gingivitis es la inflamación de las encías.", got[0])
	assert.Equal(t, "La periodontitis afecta al hueso que sostiene los dientes.", got[1])
}

func TestChunkPacksShortParagraphsTogether(t *testing.T) {
	text := "Uno.\n\nDos.\n\nTres."
	got := Chunk(text, 100)
	require.Len(t, got, 1)
	assert.Equal(t, "Uno.\n\nDos.\n\nTres.", got[0])
}

func TestChunkSplitsOversizeParagraphAtSentenceEnd(t *testing.T) {
	text := "El flúor fortalece el esmalte. El sellado previene caries en molares. " +
		"La limpieza profesional elimina el sarro acumulado."

	got := Chunk(text, 75)
	require.Greater(t, len(got), 1)
	// Every cut but the last lands just past a sentence end.
	for _, frag := range got[:len(got)-1] {
		last := frag[len(frag)-1]
		assert.Contains(t, ".!?", string(last), "fragment %q should end a sentence", frag)
	}
}

func TestChunkFallsBackToWhitespace(t *testing.T) {
	// No sentence-terminal punctuation at all.
	words := strings.Fields(strings.Repeat("esmalte dentina pulpa cemento corona ", 30))
	text := strings.Join(words, " ")

	got := Chunk(text, 60)
	require.Greater(t, len(got), 1)

	var rejoined []string
	for _, frag := range got {
		rejoined = append(rejoined, strings.Fields(frag)...)
	}
	assert.Equal(t, words, rejoined, "no word may be cut when whitespace splits exist")
}

func TestChunkAtomicTokenLongerThanMax(t *testing.T) {
	token := strings.Repeat("x", 100)
	got := Chunk(token, 30)
	require.NotEmpty(t, got)
	assert.Equal(t, token, strings.Join(got, ""), "rune-boundary cuts must not lose characters")
}
