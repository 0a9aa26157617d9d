package pdfextract

import (
	"regexp"
	"strings"
)

var (
	hyphenBreak   = regexp.MustCompile(`(\p{L})-\s*\n\s*(\p{L})`)
	spaceRuns     = regexp.MustCompile(`[ \t]+`)
	blankLineRuns = regexp.MustCompile(`\n{3,}`)
	pageNumLine   = regexp.MustCompile(`(?m)^\s*(?:-\s*)?\d{1,4}(?:\s*-)?\s*$`)
	pageWordLine  = regexp.MustCompile(`(?mi)^\s*p[áa]gina\s+\d+(\s+de\s+\d+)?\s*$`)
)

// Clean normalizes raw extracted text: re-joins words hyphenated across
// line breaks, collapses whitespace runs, and strips page numbers and
// repeated running header/footer lines.
func Clean(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = hyphenBreak.ReplaceAllString(text, "$1$2")
	text = pageNumLine.ReplaceAllString(text, "")
	text = pageWordLine.ReplaceAllString(text, "")
	text = stripRepeatedLines(text)
	text = spaceRuns.ReplaceAllString(text, " ")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// stripRepeatedLines drops short lines that repeat three or more times
// across the document. Running headers and footers repeat once per page;
// body sentences do not.
func stripRepeatedLines(text string) string {
	lines := strings.Split(text, "\n")

	counts := make(map[string]int)
	for _, line := range lines {
		key := strings.TrimSpace(line)
		if key == "" || len([]rune(key)) > 80 {
			continue
		}
		counts[key]++
	}

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		key := strings.TrimSpace(line)
		if key != "" && len([]rune(key)) <= 80 && counts[key] >= 3 {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
