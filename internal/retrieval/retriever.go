// Package retrieval ranks document fragments against a query vector.
package retrieval

import (
	"log"
	"math"
	"sort"

	"odontobot/internal/model"
)

// SentinelScore is assigned to fragments whose embedding is missing,
// malformed, or zero-norm. It sits strictly below the cosine floor of -1
// so a corrupt fragment can never outrank a real one.
const SentinelScore = -2.0

// ScoredFragment pairs a fragment with its relevance score.
type ScoredFragment struct {
	Fragment model.Fragment `json:"fragment"`
	Score    float64        `json:"score"`
}

// Cosine returns the cosine similarity dot(a,b)/(|a||b|). It returns
// SentinelScore for mismatched dimensions or zero-norm inputs rather
// than an error, so one bad vector cannot abort a ranking pass.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return SentinelScore
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA <= 0 || normB <= 0 {
		return SentinelScore
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Normalize scales vec to unit length in place and returns it. Embeddings
// are normalized once at embedding time so later scoring is a plain dot
// product; Cosine still divides by the norms, so this is an optimization,
// not a semantic change.
func Normalize(vec []float32) []float32 {
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm <= 0 {
		return vec
	}
	inv := 1 / math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) * inv)
	}
	return vec
}

// Rank scores candidates against queryVec, keeps the topK best, and drops
// any below minScore. An empty result is the refusal signal: the caller
// must answer with the canned refusal sentence without invoking the
// generator. A lone candidate is always returned regardless of score,
// since there is nothing to rank it against.
func Rank(queryVec []float32, candidates []model.Fragment, topK int, minScore float64) []ScoredFragment {
	if len(candidates) == 0 {
		return nil
	}

	scored := make([]ScoredFragment, len(candidates))
	for i := range candidates {
		scored[i].Fragment = candidates[i]
		vec, err := candidates[i].Vector()
		if err != nil {
			log.Printf("fragment %d (document %d): %v, excluded from ranking",
				candidates[i].ID, candidates[i].DocumentID, err)
			scored[i].Score = SentinelScore
			continue
		}
		scored[i].Score = Cosine(queryVec, vec)
	}

	if len(scored) == 1 {
		return scored
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Fragment.Index < scored[j].Fragment.Index
	})

	if topK > 0 && len(scored) > topK {
		scored = scored[:topK]
	}

	kept := scored[:0]
	for _, s := range scored {
		if s.Score >= minScore {
			kept = append(kept, s)
		}
	}
	return kept
}
