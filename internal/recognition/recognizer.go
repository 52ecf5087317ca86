package recognition

import (
	"fmt"

	"github.com/pagelift/pagelift/backend/internal/dom"
	"github.com/pagelift/pagelift/backend/internal/styles"
)

// Recognizer runs the best-match loop over a shared registry. It is a pure
// function of its inputs and safe for concurrent use.
type Recognizer struct {
	registry *Registry
}

// NewRecognizer creates a recognizer over an immutable registry.
func NewRecognizer(registry *Registry) *Recognizer {
	return &Recognizer{registry: registry}
}

// Recognize scans the full priority-sorted pattern list and keeps the single
// highest-confidence match, then applies the booster and the cross validator.
//
// The running best is replaced only on a strictly greater confidence, so on
// exact ties the earlier-registered (higher scan order) pattern wins. When
// nothing matches, the terminal unknown result is returned untouched by the
// post-passes.
func (r *Recognizer) Recognize(el *dom.Element, st styles.Styles, ctx ElementContext, vctx ValidationContext) RecognitionResult {
	var (
		best      *compiledPattern
		bestScore matchScore
		matched   []ComponentType
		seen      = make(map[ComponentType]struct{})
	)

	for _, p := range r.registry.patterns {
		score := matchPattern(p, el, st, ctx)
		if score.confidence <= 0 {
			continue
		}
		if _, dup := seen[p.Type]; !dup {
			seen[p.Type] = struct{}{}
			matched = append(matched, p.Type)
		}
		if score.confidence > bestScore.confidence {
			best = p
			bestScore = score
		}
	}

	if best == nil {
		return unknownResult()
	}

	result := RecognitionResult{
		ComponentType:   best.Type,
		Confidence:      clampConfidence(bestScore.confidence),
		MatchedPatterns: matched,
		Reason: fmt.Sprintf("matched %d/%d signals of %s pattern",
			bestScore.matched, bestScore.total, best.Type),
	}

	result = boostConfidence(result, el, st, ctx)
	// Review default reflects the boosted confidence; the validator may
	// still override it.
	result.ManualReviewNeeded = result.Confidence < reviewThreshold
	return validateWithContext(result, vctx)
}
