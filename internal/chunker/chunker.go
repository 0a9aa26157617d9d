// Package chunker splits cleaned document text into ordered fragments for
// embedding and retrieval.
package chunker

import (
	"regexp"
	"strings"
	"unicode"
)

const defaultMaxLength = 700

var paragraphSplitter = regexp.MustCompile(`\n[ \t]*\n+`)

// Chunk splits text into fragments of at most maxLength runes. Paragraph
// boundaries are preferred; an over-long paragraph is cut at the sentence
// end nearest to maxLength, then at whitespace, and only as a last resort
// at an exact rune boundary. Identical input always yields identical
// output, and no empty fragment is ever emitted.
func Chunk(text string, maxLength int) []string {
	if maxLength <= 0 {
		maxLength = defaultMaxLength
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var fragments []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			fragments = append(fragments, s)
		}
		current.Reset()
	}

	for _, para := range paragraphSplitter.Split(text, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if len([]rune(para)) > maxLength {
			flush()
			fragments = append(fragments, splitOversize(para, maxLength)...)
			continue
		}

		// Pack consecutive short paragraphs into one fragment.
		joined := len([]rune(current.String())) + 2 + len([]rune(para))
		if current.Len() > 0 && joined > maxLength {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}
	flush()

	return fragments
}

// splitOversize cuts a single paragraph that exceeds maxLength. Cut points
// are chosen inside the maxLength window: the last sentence end, else the
// last whitespace, else the window edge itself.
func splitOversize(para string, maxLength int) []string {
	var pieces []string
	rest := []rune(para)
	for len(rest) > maxLength {
		window := rest[:maxLength]
		cut := lastSentenceEnd(window)
		if cut <= 0 {
			cut = lastWhitespace(window)
		}
		if cut <= 0 {
			cut = maxLength
		}
		if piece := strings.TrimSpace(string(rest[:cut])); piece != "" {
			pieces = append(pieces, piece)
		}
		rest = rest[cut:]
		for len(rest) > 0 && unicode.IsSpace(rest[0]) {
			rest = rest[1:]
		}
	}
	if piece := strings.TrimSpace(string(rest)); piece != "" {
		pieces = append(pieces, piece)
	}
	return pieces
}

// lastSentenceEnd returns the index just past the last sentence-terminal
// rune in window, or 0 when there is none. A terminal rune only counts
// when followed by whitespace or the window edge, so "3.5" is not a cut.
func lastSentenceEnd(window []rune) int {
	for i := len(window) - 1; i >= 0; i-- {
		switch window[i] {
		case '.', '!', '?':
			if i == len(window)-1 || unicode.IsSpace(window[i+1]) {
				return i + 1
			}
		}
	}
	return 0
}

func lastWhitespace(window []rune) int {
	for i := len(window) - 1; i >= 0; i-- {
		if unicode.IsSpace(window[i]) {
			return i
		}
	}
	return 0
}
