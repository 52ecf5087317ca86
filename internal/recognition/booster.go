package recognition

import (
	"github.com/pagelift/pagelift/backend/internal/dom"
	"github.com/pagelift/pagelift/backend/internal/styles"
)

// Booster adjustment weights. Hand-tuned against real page corpora; keep
// them small relative to base confidences so a boost refines rather than
// decides a classification.
const (
	boostRepeatedSiblings  = 10
	boostInteractiveFields = 8
	boostImageDensity      = 10
	boostLayoutDisplay     = 5
	penaltySparseText      = 15

	// minSiblingRepeat is how many same-tag children imply repeated structure.
	minSiblingRepeat = 3

	// sparseTextLen is the character count under which a text-heavy type is
	// considered to have suspiciously little content.
	sparseTextLen = 10
)

// boostConfidence is a pure post-pass adjusting confidence with structural
// heuristics the per-pattern matcher cannot express. It never changes the
// component type and never runs on unknown results. Output is clamped to
// [1,100]: confidence 0 is reserved for the unknown terminal result, so a
// penalized match bottoms out at 1 and gets flagged for review instead.
func boostConfidence(result RecognitionResult, el *dom.Element, st styles.Styles, ctx ElementContext) RecognitionResult {
	confidence := result.Confidence

	// Repeated sibling structure strongly implies a list/grid/gallery type.
	if _, ok := repeatableTypes[result.ComponentType]; ok {
		if hasRepeatedChildren(el, minSiblingRepeat) {
			confidence += boostRepeatedSiblings
		}
		if st.Is("display", "grid", "flex") || st.Has("gridTemplateColumns") {
			confidence += boostLayoutDisplay
		}
	}

	// Nested interactive controls back up form-adjacent classifications.
	if _, ok := formAdjacentTypes[result.ComponentType]; ok {
		if countInteractive(el) > 0 {
			confidence += boostInteractiveFields
		}
	}

	// Image-driven containers should actually contain images.
	if _, ok := imageDrivenTypes[result.ComponentType]; ok {
		if countImages(el) >= minSiblingRepeat {
			confidence += boostImageDensity
		}
	}

	// Very sparse text undercuts text-heavy types.
	if _, ok := textHeavyTypes[result.ComponentType]; ok {
		if len(el.Text()) < sparseTextLen {
			confidence -= penaltySparseText
		}
	}

	if confidence < 1 {
		confidence = 1
	}
	result.Confidence = clampConfidence(confidence)
	return result
}

// hasRepeatedChildren reports whether at least n direct children share one
// tag name.
func hasRepeatedChildren(el *dom.Element, n int) bool {
	counts := make(map[string]int)
	for _, c := range el.Children() {
		counts[c.Tag()]++
		if counts[c.Tag()] >= n {
			return true
		}
	}
	return false
}

func countInteractive(el *dom.Element) int {
	return el.CountDescendants(func(e *dom.Element) bool {
		switch e.Tag() {
		case "input", "textarea", "select", "button":
			return true
		}
		return false
	})
}

func countImages(el *dom.Element) int {
	return el.CountDescendants(func(e *dom.Element) bool {
		return e.Tag() == "img" || e.Tag() == "picture"
	})
}
