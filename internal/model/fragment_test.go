package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentVectorRoundTrip(t *testing.T) {
	f := Fragment{}
	f.SetVector([]float32{0.1, 0.2, 0.3})

	vec, err := f.Vector()
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
}

func TestFragmentVectorParsesLegacyForms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []float32
	}{
		{"json array", "[0.5, -0.5]", []float32{0.5, -0.5}},
		{"brace delimited", "{0.5,-0.5}", []float32{0.5, -0.5}},
		{"string wrapped array", `"[0.5, -0.5]"`, []float32{0.5, -0.5}},
		{"string wrapped braces", `"{0.5,-0.5}"`, []float32{0.5, -0.5}},
		{"surrounding whitespace", "  [1] ", []float32{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Fragment{Embedding: tt.raw}
			vec, err := f.Vector()
			require.NoError(t, err)
			assert.Equal(t, tt.want, vec)
		})
	}
}

func TestFragmentVectorMalformed(t *testing.T) {
	for _, raw := range []string{"", "   ", "[]", "not json", "{1,2", `"garbage"`, "[1, \"x\"]"} {
		f := Fragment{Embedding: raw}
		_, err := f.Vector()
		assert.ErrorIs(t, err, ErrMalformedEmbedding, "raw=%q", raw)
	}
}

func TestSetVectorEmpty(t *testing.T) {
	f := Fragment{}
	f.SetVector(nil)
	assert.Equal(t, "[]", f.Embedding)

	_, err := f.Vector()
	assert.ErrorIs(t, err, ErrMalformedEmbedding)
}
