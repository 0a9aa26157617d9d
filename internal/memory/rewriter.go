// Package memory rewrites elliptical follow-up questions using prior
// session context so retrieval sees a self-contained query.
package memory

import (
	"fmt"
	"strings"
)

// Rewriter classifies questions and expands anaphoric follow-ups.
// Keywords and prefixes are matched case-insensitively against the
// trimmed question.
type Rewriter struct {
	keywords []string
	prefixes []string
}

func NewRewriter(keywords, anaphoraPrefixes []string) *Rewriter {
	lower := func(in []string) []string {
		out := make([]string, 0, len(in))
		for _, s := range in {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return &Rewriter{
		keywords: lower(keywords),
		prefixes: lower(anaphoraPrefixes),
	}
}

// MatchKeyword returns the first configured topic keyword contained in the
// question. A question with a keyword is self-contained: it is never
// expanded, and the caller overwrites the session's last clarified
// question with it.
func (r *Rewriter) MatchKeyword(question string) (string, bool) {
	q := normalize(question)
	for _, kw := range r.keywords {
		if strings.Contains(q, kw) {
			return kw, true
		}
	}
	return "", false
}

// IsFollowUp reports whether the question looks like an elliptical
// continuation ("y eso?", "y entonces que pasa?"). Callers must check
// MatchKeyword first; a keyword match suppresses expansion.
func (r *Rewriter) IsFollowUp(question string) bool {
	q := normalize(question)
	for _, p := range r.prefixes {
		if q == strings.TrimSpace(p) || strings.HasPrefix(q, p) {
			return true
		}
	}
	return false
}

// Expand splices the prior clarified question into the follow-up so the
// generator knows what the ellipsis refers to. With no prior context the
// question is returned unchanged.
func (r *Rewriter) Expand(prior, question string) string {
	prior = strings.TrimSpace(prior)
	question = strings.TrimSpace(question)
	if prior == "" {
		return question
	}
	return fmt.Sprintf("En relación con la pregunta anterior %q, el usuario ahora pregunta: %s", prior, question)
}

// normalize lowercases and strips the leading inverted punctuation Spanish
// questions open with, so "¿Y eso?" matches the prefix "y ".
func normalize(question string) string {
	q := strings.ToLower(strings.TrimSpace(question))
	q = strings.TrimLeft(q, "¿¡")
	return strings.TrimSpace(q)
}
