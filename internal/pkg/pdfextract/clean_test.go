package pdfextract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanDehyphenatesLineBreaks(t *testing.T) {
	got := Clean("El trata-\nmiento de conducto elimina la pulpa infectada.")
	assert.Contains(t, got, "tratamiento")
	assert.NotContains(t, got, "trata-")
}

func TestCleanCollapsesWhitespace(t *testing.T) {
	got := Clean("El  esmalte \t es   la capa externa.")
	assert.Equal(t, "El esmalte es la capa externa.", got)
}

func TestCleanStripsPageNumbers(t *testing.T) {
	got := Clean("Texto de la página uno.\n12\nTexto de la página dos.\n- 13 -\nPágina 3 de 10\nFin.")
	assert.NotContains(t, got, "12")
	assert.NotContains(t, got, "13")
	assert.NotContains(t, got, "Página 3")
	assert.Contains(t, got, "Texto de la página uno.")
	assert.Contains(t, got, "Fin.")
}

func TestCleanStripsRepeatedHeaders(t *testing.T) {
	header := "Clinica Dental Sonrisa / Manual interno"
	page := header + "\nContenido real de la página %d.\n"
	doc := strings.Join([]string{
		strings.ReplaceAll(page, "%d", "1"),
		strings.ReplaceAll(page, "%d", "2"),
		strings.ReplaceAll(page, "%d", "3"),
	}, "\n")

	got := Clean(doc)
	assert.NotContains(t, got, header)
	assert.Contains(t, got, "Contenido real de la página 1.")
	assert.Contains(t, got, "Contenido real de la página 3.")
}

func TestCleanEmptyInput(t *testing.T) {
	assert.Equal(t, "", Clean("  \n \t "))
}
