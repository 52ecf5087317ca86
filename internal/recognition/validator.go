package recognition

// ValidationContext is the structural neighborhood a classification is
// reconciled against. It is built only from ancestor context flags and
// already-finalized prior-sibling results — never from descendants, which
// have not been visited yet under the pre-order walk. That ordering
// constraint is load-bearing: the walker finalizes each sibling before
// building the next one's ValidationContext.
type ValidationContext struct {
	// Ancestors holds the PARENT's context flags, so "inside X" here means
	// a strict ancestor establishes X — the element's own contribution is
	// deliberately absent.
	Ancestors ElementContext

	// PriorSiblings are the finalized component types of earlier siblings,
	// in source order.
	PriorSiblings []ComponentType
}

// BuildValidationContext assembles the validator input for a node from its
// parent's context and its finalized prior-sibling results.
func BuildValidationContext(parent ElementContext, prior []RecognitionResult) ValidationContext {
	siblings := make([]ComponentType, len(prior))
	for i, r := range prior {
		siblings[i] = r.ComponentType
	}
	parent.SiblingTypes = nil
	return ValidationContext{Ancestors: parent, PriorSiblings: siblings}
}

// nestedReviewConfidence caps the confidence of structurally redundant
// classifications such as a card directly inside another card.
const nestedReviewConfidence = 60

// validateWithContext reconciles a classification against its structural
// neighborhood. It may swap the type to a more specific variant or flag the
// result for manual review; it never raises confidence above what the
// booster produced. Each rule is a conditional rewrite, so re-applying the
// validator to its own output is a no-op.
func validateWithContext(result RecognitionResult, vctx ValidationContext) RecognitionResult {
	switch result.ComponentType {
	case TypeButton:
		// A button under a hero region is that hero's call to action; a
		// button under a form is its submit control. Hero wins when both
		// apply: the CTA reading is what exporters care about there.
		if vctx.Ancestors.InsideHero {
			result.ComponentType = TypeCTAButton
			result.Reason += "; promoted to ctaButton inside hero region"
		} else if vctx.Ancestors.InsideForm {
			result.ComponentType = TypeSubmitButton
			result.Reason += "; promoted to submitButton inside form"
		}

	case TypeHeading:
		if vctx.Ancestors.InsideHero {
			result.ComponentType = TypeHeroHeading
			result.Reason += "; promoted to heroHeading inside hero region"
		}

	case TypeLink:
		if vctx.Ancestors.InsideNav {
			result.ComponentType = TypeNavItem
			result.Reason += "; promoted to navItem inside nav"
		}

	case TypeCard, TypeProductCard, TypePricingCard:
		// A card nested directly inside another card is usually the same
		// component matched twice; a human should pick one.
		if vctx.Ancestors.InsideCard {
			result.ManualReviewNeeded = true
			if result.Confidence > nestedReviewConfidence {
				result.Confidence = nestedReviewConfidence
			}
			result.Reason += "; nested card flagged for review"
		}

	case TypeHero:
		if vctx.Ancestors.InsideHero {
			result.ManualReviewNeeded = true
			if result.Confidence > nestedReviewConfidence {
				result.Confidence = nestedReviewConfidence
			}
			result.Reason += "; nested hero flagged for review"
		}

	case TypeRadio, TypeCheckbox:
		// A radio or checkbox with no form ancestor usually belongs to a
		// hand-rolled widget; a human should confirm the grouping.
		if !vctx.Ancestors.InsideForm {
			result.ManualReviewNeeded = true
			result.Reason += "; control has no enclosing form"
		}

	case TypeListItem:
		// List items trailing a recognized price list belong to it.
		if containsType(vctx.PriorSiblings, TypePriceList) {
			result.ManualReviewNeeded = true
			result.Reason += "; sibling of a price list, grouping unclear"
		}
	}

	return result
}

func containsType(haystack []ComponentType, needle ComponentType) bool {
	for _, t := range haystack {
		if t == needle {
			return true
		}
	}
	return false
}
